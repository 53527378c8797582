// Package chat selects canned assistant replies by keyword matching. The
// selection is deterministic and side-effect free; the typing delay shown
// to users is applied by the HTTP handler, never here.
package chat

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// WelcomeMessage greets users with no chat history.
const WelcomeMessage = `I'm Krushi Doctor, your AI farming assistant! 🌱 I can help you with:

• **Disease identification** - Understanding symptoms and causes
• **Treatment recommendations** - Both organic and chemical options
• **Prevention tips** - How to protect your crops
• **Best practices** - Planting, watering, and care

What would you like to know about your crops today?`

const treatmentReply = `For treating plant diseases, I recommend a two-pronged approach:

**Organic Options:**
- Neem oil spray (2-3 times weekly)
- Copper-based fungicides
- Proper pruning of infected areas
- Improve air circulation

**Chemical Options:**
- Consult with local agricultural extension
- Use targeted fungicides based on disease type
- Follow application instructions carefully

Would you like more specific advice for your crop?`

const preventionReply = `Here are key prevention strategies for healthy crops:

1. **Crop Rotation** - Change crops each season
2. **Proper Spacing** - Ensure good air flow
3. **Water Management** - Avoid wet leaves, water at base
4. **Soil Health** - Maintain proper pH and nutrients
5. **Early Detection** - Regular monitoring

Prevention is always better than cure! 🌿`

const gratitudeReply = "You're welcome! 🌻 I'm always here to help with your farming questions. Don't hesitate to ask anything about your crops!"

const fallbackReply = `That's a great question about **%s**!

Based on agricultural best practices, I recommend consulting with your local extension office for region-specific advice. In the meantime, ensure your plants have:

- Proper watering schedule
- Adequate sunlight
- Good soil drainage
- Regular monitoring for pests

Would you like me to elaborate on any of these points?`

// rule maps a keyword group to its reply. Rules are checked in order and
// the first match wins.
type rule struct {
	keywords []string
	reply    string
}

// Responder picks one reply per input message.
type Responder struct {
	rules []rule
}

// NewResponder builds the fixed rule table.
func NewResponder() *Responder {
	return &Responder{
		rules: []rule{
			{keywords: []string{"treat", "cure", "spray"}, reply: treatmentReply},
			{keywords: []string{"prevent", "protect", "avoid"}, reply: preventionReply},
			{keywords: []string{"thank"}, reply: gratitudeReply},
		},
	}
}

// Reply returns the canned response for the input. Matching is
// case-insensitive substring search, so e.g. "avoidance" triggers the
// prevention rule; that looseness is a known property of the rule table.
// Unmatched input gets a generic reply echoing its first 30 characters.
func (r *Responder) Reply(input string) string {
	lower := strings.ToLower(input)
	for _, rule := range r.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}
	return fmt.Sprintf(fallbackReply, truncate(input, 30))
}

// truncate cuts s to at most n runes. Cutting on bytes would split
// multibyte input mid-rune and produce invalid UTF-8, which BSON strings
// cannot carry.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
