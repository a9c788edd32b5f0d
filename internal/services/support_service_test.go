package services

import (
	"strings"
	"testing"
)

func TestSupportAnswer_MatchesKnownQuestion(t *testing.T) {
	svc := SupportService{}

	answer, matched := svc.Answer("How can I check my pnr status please?")
	if !matched {
		t.Fatalf("expected a match")
	}
	if !strings.Contains(answer, "PNR") {
		t.Fatalf("wrong answer: %q", answer)
	}
}

func TestSupportAnswer_FallbackOnUnknown(t *testing.T) {
	svc := SupportService{}

	answer, matched := svc.Answer("do you serve biryani on board")
	if matched {
		t.Fatalf("unexpected match")
	}
	if answer != fallbackAnswer {
		t.Fatalf("got %q", answer)
	}
}

func TestSupportAnswer_EmptyMessageFallsBack(t *testing.T) {
	svc := SupportService{}
	if _, matched := svc.Answer("   "); matched {
		t.Fatalf("blank message should not match")
	}
}

func TestListFAQs_NonEmpty(t *testing.T) {
	svc := SupportService{}
	if len(svc.ListFAQs()) == 0 {
		t.Fatalf("expected canned FAQs")
	}
}
