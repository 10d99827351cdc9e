package api

import (
	"context"
)

// OrderNote is a note on an order.
type OrderNote struct {
	ID             int    `json:"id,omitempty"`
	Author         string `json:"author,omitempty"`
	DateCreated    *Time  `json:"date_created,omitempty"`
	DateCreatedGMT *Time  `json:"date_created_gmt,omitempty"`
	Note           string `json:"note"`
	CustomerNote   bool   `json:"customer_note"`
	AddedByUser    bool   `json:"added_by_user,omitempty"`
}

// OrderNoteListParams filters order notes.
type OrderNoteListParams struct {
	ListOptions

	Type string // any | customer | internal
}

func notesPath(orderID int) string {
	return endpointf("orders/%d/notes", orderID)
}

// List retrieves the notes of an order.
func (s OrderNotesService) List(ctx context.Context, orderID int, params OrderNoteListParams) (*Page[OrderNote], error) {
	query := Params{}
	setString(query, "type", params.Type)
	return List[OrderNote](ctx, s, notesPath(orderID), query, params.ListOptions)
}

// Get retrieves a note. It returns nil when it does not exist.
func (s OrderNotesService) Get(ctx context.Context, orderID, id int) (*OrderNote, error) {
	return getOne[OrderNote](ctx, s, endpointf("%s/%d", notesPath(orderID), id), nil)
}

// Create adds a note to an order.
func (s OrderNotesService) Create(ctx context.Context, orderID int, note *OrderNote) (*OrderNote, error) {
	return create[OrderNote](ctx, s, notesPath(orderID), note)
}

// Delete deletes a note. Notes do not support the trash.
func (s OrderNotesService) Delete(ctx context.Context, orderID, id int) (*OrderNote, error) {
	return remove[OrderNote](ctx, s, endpointf("%s/%d", notesPath(orderID), id), forceParams(true))
}
