package embedding

import (
	"context"
	"testing"

	"github.com/hyperjump/clausewise/pkg/utils"
)

func TestHashTokenizer_Tokenize(t *testing.T) {
	ids, attn, types := HashTokenizer{}.Tokenize("hello world", 10)
	if len(ids) != 10 || len(attn) != 10 || len(types) != 10 {
		t.Fatalf("lengths %d %d %d", len(ids), len(attn), len(types))
	}
	if ids[0] != clsToken {
		t.Errorf("expected CLS %d, got %d", clsToken, ids[0])
	}
	if ids[3] != sepToken {
		t.Errorf("expected SEP at 3, got %d", ids[3])
	}
	for i, want := range []int64{1, 1, 1, 1, 0} {
		if attn[i] != want {
			t.Errorf("attention[%d] = %d, want %d", i, attn[i], want)
		}
	}
	if ids[1] < vocabBase || ids[1] >= vocabSize {
		t.Errorf("token id %d out of vocabulary range", ids[1])
	}
}

func TestHashTokenizer_Truncates(t *testing.T) {
	ids, attn, _ := HashTokenizer{}.Tokenize("a b c d e f g h", 4)
	if ids[3] != sepToken {
		t.Errorf("last id = %d, want SEP", ids[3])
	}
	for i, a := range attn {
		if a != 1 {
			t.Errorf("attention[%d] = %d, want 1", i, a)
		}
	}
}

func TestWords(t *testing.T) {
	got := Words("  The Tenant, shall-PAY 30 days. ")
	want := []string{"the", "tenant", "shall", "pay", "30", "days"}
	if len(got) != len(want) {
		t.Fatalf("Words = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Words[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if len(Words("")) != 0 {
		t.Error("empty string should yield no words")
	}
}

func TestMockEmbedder_Similarity(t *testing.T) {
	e := NewMockEmbedder(128)
	ctx := context.Background()
	a, _ := e.Embed(ctx, "the tenant shall pay rent monthly")
	b, _ := e.Embed(ctx, "the tenant shall pay rent")
	c, _ := e.Embed(ctx, "quarterly dividend announcement")
	if utils.Cosine(a, b) <= utils.Cosine(a, c) {
		t.Errorf("expected overlapping sentences to be closer: %f vs %f", utils.Cosine(a, b), utils.Cosine(a, c))
	}
	again, _ := e.Embed(ctx, "the tenant shall pay rent monthly")
	for i := range a {
		if a[i] != again[i] {
			t.Fatal("mock embedder is not deterministic")
		}
	}
}
