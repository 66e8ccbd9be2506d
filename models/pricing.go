package models

import "strings"

// RoomType is a closed room category. Every known category maps to a
// fixed nightly price.
type RoomType string

const (
	RoomSingle RoomType = "SINGLE"
	RoomDouble RoomType = "DOUBLE"
	RoomTriple RoomType = "TRIPLE"
)

// DefaultRoomPrice is applied to any room type outside the price table.
// Assigning an unknown type is not an error; the guest is simply priced
// at this default.
const DefaultRoomPrice = 0

var roomPrices = map[RoomType]int{
	RoomSingle: 100,
	RoomDouble: 150,
	RoomTriple: 200,
}

// NormalizeRoomType maps free-text input onto a RoomType. Input is
// trimmed and uppercased; the result may still be outside the table.
func NormalizeRoomType(s string) RoomType {
	return RoomType(strings.ToUpper(strings.TrimSpace(s)))
}

func (t RoomType) Valid() bool {
	_, ok := roomPrices[t]
	return ok
}

// Price returns the nightly price for t, or DefaultRoomPrice when t is
// not in the table.
func (t RoomType) Price() int {
	if price, ok := roomPrices[t]; ok {
		return price
	}
	return DefaultRoomPrice
}
