package model

type Roommate struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarTag string `json:"avatar_tag"`
}
