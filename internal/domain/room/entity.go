package room

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidTypeName = errors.New("room type name must not be empty")
	ErrNegativePrice   = errors.New("base price cannot be negative")
)

// RoomType is catalog reference data: one nightly base price per type.
type RoomType struct {
	id             uuid.UUID
	name           string
	basePriceCents int64
}

func NewRoomType(id uuid.UUID, name string, basePriceCents int64) (*RoomType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidTypeName
	}
	if basePriceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &RoomType{id: id, name: name, basePriceCents: basePriceCents}, nil
}

func (t *RoomType) ID() uuid.UUID         { return t.id }
func (t *RoomType) Name() string          { return t.name }
func (t *RoomType) BasePriceCents() int64 { return t.basePriceCents }
