package models

import (
	"html/template"
	"time"
)

// Domain types

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Quote is one saved quote. Location and Date are optional; they are nil
// when the owner left the form fields blank, and serialize as JSON null.
type Quote struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	QuoteText  string    `json:"quote_text"`
	PersonName string    `json:"person_name"`
	Location   *string   `json:"location"`
	Date       *string   `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}

// Page data types, one per rendered template

type HomePage struct {
	Username string
	Quotes   []Quote
}

type QuoteFormPage struct {
	Username string
	Editing  bool
	Quote    Quote
}

// StatsPage carries the owner's full quote set as pre-marshaled JSON; the
// page script does all the aggregation.
type StatsPage struct {
	Username   string
	QuoteCount int
	QuotesJSON template.JS
}

// GamePage is ready only once the jar holds enough quotes to play with.
type GamePage struct {
	Username   string
	QuoteCount int
	Ready      bool
	QuotesJSON template.JS
}

type ErrorPage struct {
	Status     int
	StatusText string
	Message    string
}
