package dto

import "github.com/heritage-archive/content-service/internal/domain"

// LocalizedStringRequest - пара he/en, обе строки непустые
type LocalizedStringRequest struct {
	He string `json:"he" validate:"required"`
	En string `json:"en" validate:"required"`
}

func (r *LocalizedStringRequest) toDomain() domain.LocalizedString {
	return domain.LocalizedString{He: r.He, En: r.En}
}

// VRHotspotRequest - точка интереса внутри панорамы
type VRHotspotRequest struct {
	ImageURL string                  `json:"hotspot_img_url" validate:"required,url"`
	Title    *LocalizedStringRequest `json:"hotspot_title" validate:"required"`
}

// MapPOIRequest - запрос на создание/замену точки карты
type MapPOIRequest struct {
	ID          string                  `json:"id" validate:"required"`
	Coordinates []float64               `json:"coordinates" validate:"required,len=2"` // [lng, lat]
	StoneTitle  *LocalizedStringRequest `json:"stone_title" validate:"required"`
	VR360URL    string                  `json:"vr_360_url" validate:"required,url"`
	VRTitle     *LocalizedStringRequest `json:"vr_title" validate:"required"`
	VRHotspot   *VRHotspotRequest       `json:"vr_hotspot" validate:"required"`
}

// ToDomain конвертирует провалидированный запрос в документ
func (r *MapPOIRequest) ToDomain() *domain.MapPOI {
	return &domain.MapPOI{
		ID:          r.ID,
		Coordinates: domain.Coordinates{r.Coordinates[0], r.Coordinates[1]},
		StoneTitle:  r.StoneTitle.toDomain(),
		VR360URL:    r.VR360URL,
		VRTitle:     r.VRTitle.toDomain(),
		VRHotspot: domain.VRHotspot{
			ImageURL: r.VRHotspot.ImageURL,
			Title:    r.VRHotspot.Title.toDomain(),
		},
	}
}

// AltTextRequest - альтернативный текст (только английский)
type AltTextRequest struct {
	En string `json:"en" validate:"required"`
}

// ImageAssetsRequest - изображения элемента таймлайна
type ImageAssetsRequest struct {
	URLThumb string          `json:"url_thumb" validate:"required,url"`
	URLLarge string          `json:"url_large" validate:"required,url"`
	AltText  *AltTextRequest `json:"alt_text" validate:"required"`
}

// MediaAssetsRequest - объект обязателен, все поля внутри необязательны
type MediaAssetsRequest struct {
	VoiceoverURL  *string `json:"voiceover_url,omitempty" validate:"omitnil,url"`
	TextContentID *string `json:"text_content_id,omitempty" validate:"omitnil,min=1"`
	VideoURL      *string `json:"video_url,omitempty" validate:"omitnil,url"`
}

// TimelineItemRequest - запрос на создание/замену элемента таймлайна
type TimelineItemRequest struct {
	ID                 *int                    `json:"id" validate:"required,min=0"`
	YearsRange         string                  `json:"years_range" validate:"required"`
	TitleDefault       *LocalizedStringRequest `json:"title_default" validate:"required"`
	TitleHover         *LocalizedStringRequest `json:"title_hover" validate:"required"`
	TitleToggle        *LocalizedStringRequest `json:"title_toggle" validate:"required"`
	ImageAssets        *ImageAssetsRequest     `json:"image_assets" validate:"required"`
	MediaAssets        *MediaAssetsRequest     `json:"media_assets" validate:"required"`
	RelatedPhotosArray []string                `json:"related_photos_array" validate:"omitempty,dive,url"`
}

// ToDomain конвертирует провалидированный запрос в документ
func (r *TimelineItemRequest) ToDomain() *domain.TimelineItem {
	photos := make([]string, len(r.RelatedPhotosArray))
	copy(photos, r.RelatedPhotosArray)

	return &domain.TimelineItem{
		ID:           *r.ID,
		YearsRange:   r.YearsRange,
		TitleDefault: r.TitleDefault.toDomain(),
		TitleHover:   r.TitleHover.toDomain(),
		TitleToggle:  r.TitleToggle.toDomain(),
		ImageAssets: domain.ImageAssets{
			URLThumb: r.ImageAssets.URLThumb,
			URLLarge: r.ImageAssets.URLLarge,
			AltText:  domain.AltText{En: r.ImageAssets.AltText.En},
		},
		MediaAssets: domain.MediaAssets{
			VoiceoverURL:  deref(r.MediaAssets.VoiceoverURL),
			TextContentID: deref(r.MediaAssets.TextContentID),
			VideoURL:      deref(r.MediaAssets.VideoURL),
		},
		RelatedPhotosArray: photos,
	}
}

// CollectionRequest - запрос на создание/замену коллекции
type CollectionRequest struct {
	CollectionID       string                  `json:"collection_id" validate:"required"`
	Title              *LocalizedStringRequest `json:"title" validate:"required"`
	YearsRange         string                  `json:"years_range" validate:"required"`
	FilmItemReferences []domain.FilmItemRef    `json:"film_item_references" validate:"omitempty,dive,film_ref"`
}

// ToDomain конвертирует провалидированный запрос в документ
func (r *CollectionRequest) ToDomain() *domain.Collection {
	refs := make([]domain.FilmItemRef, len(r.FilmItemReferences))
	copy(refs, r.FilmItemReferences)

	return &domain.Collection{
		CollectionID:       r.CollectionID,
		Title:              r.Title.toDomain(),
		YearsRange:         r.YearsRange,
		FilmItemReferences: refs,
	}
}

// LoginRequest - учётные данные администратора
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
