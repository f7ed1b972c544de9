package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Listing поля объявления, которые попадают в письмо
type Listing struct {
	ID           string
	City         string
	Price        float64
	Type         string
	Size         float64
	Bedrooms     *int
	ContactName  string
	ContactEmail string
}

// Message письмо для канала отправки
type Message struct {
	To      string
	Subject string
	Body    string
}

// Validate проверяет поля, обязательные для шаблона
func (l Listing) Validate() error {
	var missing []string
	if strings.TrimSpace(l.City) == "" {
		missing = append(missing, "location.city")
	}
	if strings.TrimSpace(l.ContactName) == "" {
		missing = append(missing, "contact.name")
	}
	if strings.TrimSpace(l.ContactEmail) == "" {
		missing = append(missing, "contact.email")
	}
	if len(missing) > 0 {
		return &MalformedPayloadError{Missing: missing}
	}
	return nil
}

// ComposeMessage собирает письмо о новом объявлении
func ComposeMessage(l Listing, to string) Message {
	bedrooms := "N/A"
	if l.Bedrooms != nil && *l.Bedrooms > 0 {
		bedrooms = strconv.Itoa(*l.Bedrooms)
	}

	var b strings.Builder
	b.WriteString("New Property Listed!\n\n")
	fmt.Fprintf(&b, "Location: %s\n", l.City)
	fmt.Fprintf(&b, "Price: €%s\n", formatNumber(l.Price))
	fmt.Fprintf(&b, "Type: %s\n", l.Type)
	fmt.Fprintf(&b, "Size: %sm²\n", formatNumber(l.Size))
	fmt.Fprintf(&b, "Bedrooms: %s\n", bedrooms)
	fmt.Fprintf(&b, "Contact: %s (%s)\n\n", l.ContactName, l.ContactEmail)
	b.WriteString("View more details on our website.\n")

	return Message{
		To:      to,
		Subject: "New Property Listed in " + l.City,
		Body:    b.String(),
	}
}

// formatNumber 250000 -> "250000", 72.5 -> "72.5"
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
