package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/babludoman333/rail-easy-seats/internal/domain"
	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
	"github.com/babludoman333/rail-easy-seats/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders the downloadable e-ticket PDF for a confirmed
// booking. Pure formatting over the booking + train + station join; no
// business logic lives here.
type TicketService struct {
	Bookings  BookingService
	RequestID string
	Loader    func(pnr string) (models.Booking, error)
}

func (s TicketService) load(pnr string) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(pnr)
	}
	return s.Bookings.GetByPNR(pnr)
}

func (s TicketService) GenerateTicket(pnr string) ([]byte, string, error) {
	booking, err := s.load(pnr)
	if err != nil {
		return nil, "", err
	}
	if booking.Train == nil || booking.Train.FromStation == nil || booking.Train.ToStation == nil {
		return nil, "", domain.InternalError{Msg: "booking is missing train data"}
	}
	utils.LogEvent(s.RequestID, "ticket", "generate", "pnr="+booking.BookingID)
	return buildTicketPDF(booking)
}

func buildTicketPDF(b models.Booking) ([]byte, string, error) {
	t := b.Train

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("RailEase E-Ticket", false)
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(29, 78, 216)
	pdf.Rect(0, 0, 210, 45, "F")
	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetTextColor(255, 255, 255)
	pdf.Text(20, 25, "RailEase")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 35, "Premium Railway Booking Solution")

	// Page border
	pdf.SetDrawColor(226, 232, 240)
	pdf.SetLineWidth(1)
	pdf.Rect(10, 10, 190, 277, "D")

	// PNR box
	pdf.SetFillColor(248, 250, 252)
	pdf.Rect(125, 15, 70, 25, "F")
	pdf.SetDrawColor(203, 213, 225)
	pdf.Rect(125, 15, 70, 25, "D")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(71, 85, 105)
	pdf.Text(130, 23, "PNR NUMBER")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(15, 23, 42)
	pdf.Text(130, 35, b.BookingID)

	// Status badge
	pdf.SetFillColor(34, 197, 94)
	pdf.Rect(130, 43, 30, 10, "F")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(255, 255, 255)
	pdf.Text(134, 50, strings.ToUpper(b.Status))

	// Journey details
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(29, 78, 216)
	pdf.Text(20, 70, "Journey Details")
	pdf.SetDrawColor(203, 213, 225)
	pdf.SetLineWidth(0.5)
	pdf.Line(20, 74, 190, 74)

	pdf.SetFillColor(249, 250, 251)
	pdf.Rect(15, 80, 180, 40, "F")
	pdf.SetDrawColor(229, 231, 235)
	pdf.Rect(15, 80, 180, 40, "D")

	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(20, 90, "Train: "+t.Name)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(140, 90, "Number: "+t.Number)
	pdf.Text(20, 100, "From: "+t.FromStation.Name)
	pdf.Text(20, 110, "To: "+t.ToStation.Name)
	pdf.Text(140, 100, "Departure: "+t.DepartureTime)
	pdf.Text(140, 110, "Arrival: "+t.ArrivalTime)

	// Passenger information
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(29, 78, 216)
	pdf.Text(20, 140, "Passenger Information")
	pdf.Line(20, 144, 190, 144)

	pdf.SetFillColor(254, 249, 195)
	pdf.Rect(15, 150, 180, 35, "F")
	pdf.SetDrawColor(251, 191, 36)
	pdf.Rect(15, 150, 180, 35, "D")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(15, 23, 42)
	pdf.Text(20, 160, "Name: "+b.PassengerName)
	pdf.Text(120, 160, fmt.Sprintf("Age: %d years", b.PassengerAge))
	pdf.Text(20, 170, "Gender: "+b.PassengerGender)
	pdf.Text(120, 170, "Class: "+b.Class)
	pdf.Text(20, 180, "Coach: "+b.Coach)
	pdf.Text(120, 180, "Seat(s): "+strings.Join(b.SeatNumbers, ", "))

	// Journey date highlight
	pdf.SetFillColor(219, 234, 254)
	pdf.Rect(15, 190, 180, 15, "F")
	pdf.SetDrawColor(59, 130, 246)
	pdf.Rect(15, 190, 180, 15, "D")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(20, 200, "Journey Date: "+utils.LongDate(b.JourneyDate))

	// Payment details
	pdf.SetFillColor(220, 252, 231)
	pdf.Rect(15, 210, 120, 20, "F")
	pdf.SetDrawColor(34, 197, 94)
	pdf.Rect(15, 210, 120, 20, "D")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, 220, "Payment Details")
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(20, 227, "Amount Paid: "+utils.FormatINR(b.TotalAmount))

	// QR placeholder
	pdf.SetFillColor(243, 244, 246)
	pdf.Rect(145, 210, 40, 40, "F")
	pdf.SetDrawColor(156, 163, 175)
	pdf.Rect(145, 210, 40, 40, "D")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(107, 114, 128)
	pdf.Text(155, 230, "Digital QR Code")
	pdf.Text(157, 237, "Scan for Details")

	// Instructions
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(220, 38, 127)
	pdf.Text(20, 265, "Travel Instructions")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(55, 65, 81)
	pdf.Text(20, 272, "- Carry valid photo ID (Aadhaar/PAN/Passport/DL) during travel")
	pdf.Text(20, 278, "- Arrive 30 minutes before departure - Valid for travel without print")

	// Footer band
	pdf.SetFillColor(15, 23, 42)
	pdf.Rect(0, 287, 210, 10, "F")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(255, 255, 255)
	pdf.Text(20, 294, "RailEase - Your Trusted Travel Partner")
	pdf.Text(130, 294, "Generated: "+time.Now().Format("2006-01-02 15:04"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RailEase-Ticket-%s.pdf", b.BookingID)
	return buf.Bytes(), filename, nil
}
