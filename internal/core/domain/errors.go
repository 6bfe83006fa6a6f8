package domain

import "errors"

var (
	ErrRoomNotFound      = errors.New("room does not exist")
	ErrRoomAlreadyBooked = errors.New("room already booked")
	ErrBookingNotFound   = errors.New("no booking found for this room")
	ErrInvalidQuantity   = errors.New("quantity must be a positive number")
)
