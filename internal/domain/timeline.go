package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// AltText - альтернативный текст изображения (только английский)
type AltText struct {
	En string `json:"en" bson:"en"`
}

// ImageAssets - изображения элемента таймлайна
type ImageAssets struct {
	URLThumb string  `json:"url_thumb" bson:"url_thumb"`
	URLLarge string  `json:"url_large" bson:"url_large"`
	AltText  AltText `json:"alt_text" bson:"alt_text"`
}

// MediaAssets - необязательные медиа; любое подмножество полей может быть задано
type MediaAssets struct {
	VoiceoverURL  string `json:"voiceover_url,omitempty" bson:"voiceover_url,omitempty"`
	TextContentID string `json:"text_content_id,omitempty" bson:"text_content_id,omitempty"`
	VideoURL      string `json:"video_url,omitempty" bson:"video_url,omitempty"`
}

// TimelineItem представляет элемент карусели таймлайна.
// ID - порядковый ключ для сортировки, адресация идёт по ObjectID.
type TimelineItem struct {
	ObjectID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ID                 int                `json:"id" bson:"id"`
	YearsRange         string             `json:"years_range" bson:"years_range"`
	TitleDefault       LocalizedString    `json:"title_default" bson:"title_default"`
	TitleHover         LocalizedString    `json:"title_hover" bson:"title_hover"`
	TitleToggle        LocalizedString    `json:"title_toggle" bson:"title_toggle"`
	ImageAssets        ImageAssets        `json:"image_assets" bson:"image_assets"`
	MediaAssets        MediaAssets        `json:"media_assets" bson:"media_assets"`
	RelatedPhotosArray []string           `json:"related_photos_array" bson:"related_photos_array"`
}

