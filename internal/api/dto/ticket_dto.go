package dto

// TicketPayload carries ticket attributes for create and update. Every field
// is optional; create accepts any subset and update merges only the supplied
// fields into the stored ticket.
type TicketPayload struct {
	NoTicket *string `json:"no_ticket"`
	NoMeja   *string `json:"no_meja"`
	Status   *string `json:"status"`
	DateTime *string `json:"date_time"`
}
