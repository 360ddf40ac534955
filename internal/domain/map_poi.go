package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Coordinates - пара (долгота, широта)
type Coordinates [2]float64

// Longitude возвращает долготу
func (c Coordinates) Longitude() float64 { return c[0] }

// Latitude возвращает широту
func (c Coordinates) Latitude() float64 { return c[1] }

// VRHotspot - единственная точка интереса внутри VR-панорамы
type VRHotspot struct {
	ImageURL string          `json:"hotspot_img_url" bson:"hotspot_img_url"`
	Title    LocalizedString `json:"hotspot_title" bson:"hotspot_title"`
}

// MapPOI представляет точку на интерактивной карте с VR-туром
type MapPOI struct {
	ObjectID    primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ID          string             `json:"id" bson:"id"`
	Coordinates Coordinates        `json:"coordinates" bson:"coordinates"`
	StoneTitle  LocalizedString    `json:"stone_title" bson:"stone_title"`
	VR360URL    string             `json:"vr_360_url" bson:"vr_360_url"`
	VRTitle     LocalizedString    `json:"vr_title" bson:"vr_title"`
	VRHotspot   VRHotspot          `json:"vr_hotspot" bson:"vr_hotspot"`
}
