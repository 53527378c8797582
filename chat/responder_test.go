package chat

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestReplySelection(t *testing.T) {
	r := NewResponder()

	t.Run("treatment keywords", func(t *testing.T) {
		assert.Equal(t, treatmentReply, r.Reply("How do I treat blight?"))
		assert.Equal(t, treatmentReply, r.Reply("Is there a CURE?"))
		assert.Equal(t, treatmentReply, r.Reply("what should I spray on leaves"))
	})

	t.Run("prevention keywords", func(t *testing.T) {
		assert.Equal(t, preventionReply, r.Reply("How to prevent disease?"))
		assert.Equal(t, preventionReply, r.Reply("protect my tomatoes"))
		assert.Equal(t, preventionReply, r.Reply("things to avoid"))
	})

	t.Run("gratitude", func(t *testing.T) {
		assert.Equal(t, gratitudeReply, r.Reply("thank you"))
		assert.Equal(t, gratitudeReply, r.Reply("Thanks a lot!"))
	})

	t.Run("fallback echoes first 30 characters", func(t *testing.T) {
		input := "random question about something quite long"
		got := r.Reply(input)
		assert.Contains(t, got, input[:30])
	})

	t.Run("short input echoed whole", func(t *testing.T) {
		assert.Contains(t, r.Reply("random question"), "random question")
	})

	t.Run("multibyte input under 30 runes echoed whole", func(t *testing.T) {
		// 28 runes but well over 30 bytes; a byte cut would split a rune.
		input := "मेरी फसल में कीड़े लग गए हैं"
		got := r.Reply(input)
		assert.True(t, utf8.ValidString(got), "reply must be valid UTF-8")
		assert.Contains(t, got, input)
	})

	t.Run("multibyte input over 30 runes truncates on runes", func(t *testing.T) {
		input := strings.Repeat("क", 35)
		got := r.Reply(input)
		assert.True(t, utf8.ValidString(got), "reply must be valid UTF-8")
		assert.Contains(t, got, strings.Repeat("क", 30))
		assert.NotContains(t, got, strings.Repeat("क", 31))
	})

	t.Run("treatment wins over prevention", func(t *testing.T) {
		assert.Equal(t, treatmentReply, r.Reply("how to treat and prevent blight"))
	})

	t.Run("substring match is deliberate", func(t *testing.T) {
		// "avoidance" contains "avoid".
		assert.Equal(t, preventionReply, r.Reply("pest avoidance tips"))
	})
}

func TestReplyDeterministic(t *testing.T) {
	r := NewResponder()
	for _, in := range []string{"treat", "prevent", "thank", "hello world"} {
		first := r.Reply(in)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, r.Reply(in))
		}
	}
}

func TestWelcomeMessage(t *testing.T) {
	assert.True(t, strings.Contains(WelcomeMessage, "Krushi Doctor"))
}
