package bot

import "strings"

// Intent is the classified purpose of a chat message.
type Intent string

const (
	IntentAddTask      Intent = "add_task"
	IntentListTasks    Intent = "list_tasks"
	IntentCompleteTask Intent = "complete_task"
	IntentDeleteTask   Intent = "delete_task"
	IntentUnknown      Intent = "unknown"
)

// rule pairs an intent with the keywords that trigger it. Rules are
// evaluated in order and the first match wins; that tie-break is the
// contract, not an accident.
type rule struct {
	intent   Intent
	keywords []string
}

var rules = []rule{
	{IntentAddTask, []string{"add", "create"}},
	{IntentListTasks, []string{"list", "show"}},
	{IntentCompleteTask, []string{"complete", "done"}},
	{IntentDeleteTask, []string{"remove", "delete"}},
}

// fillerWords is the single strip vocabulary shared by every
// title-extracting rule. Add, complete and delete must extract the same
// title from the same phrasing, otherwise a chat-added task cannot be
// found again by the words that created it.
var fillerWords = map[string]bool{
	"task":  true,
	"tasks": true,
	"to-do": true,
	"todo":  true,
	"list":  true,
	"mark":  true,
	"as":    true,
}

// Classify scans the message against the rule table and returns the intent
// plus the extracted task-title candidate (empty for list/unknown).
func Classify(message string) (Intent, string) {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				switch r.intent {
				case IntentListTasks:
					return r.intent, ""
				default:
					return r.intent, extractTitle(lower, r)
				}
			}
		}
	}
	return IntentUnknown, ""
}

// extractTitle strips the rule's keywords and the shared filler tokens
// from the lower-cased message; the trimmed remainder is the title
// candidate.
func extractTitle(lower string, r rule) string {
	drop := make(map[string]bool, len(r.keywords))
	for _, w := range r.keywords {
		drop[w] = true
	}

	var kept []string
	for _, tok := range strings.Fields(lower) {
		word := strings.Trim(tok, ":;,.!?")
		if word == "" || drop[word] || fillerWords[word] {
			continue
		}
		kept = append(kept, word)
	}
	return strings.TrimSpace(strings.Join(kept, " "))
}
