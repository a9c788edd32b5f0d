package services

import "strings"

// FAQ is one canned support answer; matching is deliberately simple keyword
// containment, same as the chat widget it backs.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var faqs = []FAQ{
	{
		Question: "How do I book a train ticket?",
		Answer:   "Go to the homepage, enter your source, destination, and travel date, then search for trains. Select your preferred train and class, choose seats, and proceed to payment.",
	},
	{
		Question: "How can I check my PNR status?",
		Answer:   "Click on the 'PNR Status' button in the header and enter your PNR number to view complete journey details.",
	},
	{
		Question: "What payment methods are accepted?",
		Answer:   "We accept UPI, credit/debit cards, and net banking for ticket bookings.",
	},
	{
		Question: "Can I cancel my booking?",
		Answer:   "Yes, you can view your bookings from 'My Bookings' in the user menu and cancel tickets as per railway cancellation policies.",
	},
	{
		Question: "What classes are available?",
		Answer:   "We offer 2S, SL, CC, 3E, EC, 3A, 2A, and 1A classes with varying prices and amenities.",
	},
	{
		Question: "How do I contact support?",
		Answer:   "You can use this chat support, click the Contact button in the header, or email us for any queries.",
	},
}

const fallbackAnswer = "I couldn't find a specific answer to your question. Please try selecting from our FAQs or contact our support team for personalized assistance."

type SupportService struct{}

func (SupportService) ListFAQs() []FAQ {
	return faqs
}

// Answer matches a free-text question against the FAQ list. The first three
// words of each canned question act as the keyword; no match returns the
// fallback with matched=false.
func (SupportService) Answer(message string) (string, bool) {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return fallbackAnswer, false
	}
	for _, faq := range faqs {
		q := strings.ToLower(faq.Question)
		words := strings.Fields(q)
		prefix := strings.Join(words[:min(3, len(words))], " ")
		if strings.Contains(msg, prefix) || strings.Contains(q, msg) {
			return faq.Answer, true
		}
	}
	return fallbackAnswer, false
}
