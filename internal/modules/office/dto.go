package office

import "meetspace/internal/domain"

type RoomInput struct {
	Name        string `json:"name" validate:"required,max=200"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
	Description string `json:"description" validate:"max=1000"`
}

type CreateOfficeRequest struct {
	Name    string      `json:"name" validate:"required,max=200"`
	Address string      `json:"address" validate:"required,max=500"`
	Rooms   []RoomInput `json:"rooms" validate:"omitempty,dive"`
}

type UpdateOfficeRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address" validate:"required,max=500"`
}

type AssignManagerRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type CreateRoomRequest struct {
	OfficeID    string `json:"office_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=200"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
	Description string `json:"description" validate:"max=1000"`
}

type UpdateRoomRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
	Description string `json:"description" validate:"max=1000"`
}

type RoomResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

type OfficeResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Address  string         `json:"address"`
	IsActive bool           `json:"is_active"`
	Rooms    []RoomResponse `json:"rooms"`
}

func toRoomResponse(r domain.Room) RoomResponse {
	return RoomResponse{
		ID:          r.ID,
		Name:        r.Name,
		Capacity:    r.Capacity,
		Description: r.Description,
		IsActive:    r.IsActive(),
	}
}

func toOfficeResponse(o domain.Office) OfficeResponse {
	rooms := make([]RoomResponse, 0, len(o.Rooms))
	for _, r := range o.Rooms {
		rooms = append(rooms, toRoomResponse(r))
	}
	return OfficeResponse{
		ID:       o.ID,
		Name:     o.Name,
		Address:  o.Address,
		IsActive: o.IsActive(),
		Rooms:    rooms,
	}
}
