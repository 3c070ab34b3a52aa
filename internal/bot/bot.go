package bot

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"taskzen-go/internal/models"
	"taskzen-go/internal/repository"
)

//go:embed task_schema.json
var taskSchemaJSON string

const helpReply = `I can add, list, complete and delete tasks. Try "add task buy milk" or "add task: title;description;priority;due_date".`

// Bot answers chat messages. With a configured Gemini client the reply
// comes from the model; otherwise the rule-based interpreter executes the
// message directly. Every exchange is appended to the chat-history log.
type Bot struct {
	tasks  *repository.TaskRepository
	chat   *repository.ChatRepository
	gemini *GeminiClient
	schema *gojsonschema.Schema
	titler cases.Caser
}

func NewBot(tasks *repository.TaskRepository, chat *repository.ChatRepository, gemini *GeminiClient) *Bot {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(taskSchemaJSON))
	if err != nil {
		panic(err)
	}
	return &Bot{
		tasks:  tasks,
		chat:   chat,
		gemini: gemini,
		schema: schema,
		titler: cases.Title(language.English),
	}
}

// HandleMessage produces a reply for the user's message and logs the
// exchange. Only the history append can fail; everything else degrades to
// a reply string.
func (b *Bot) HandleMessage(ctx context.Context, email, message string) (string, error) {
	var reply string
	if b.gemini != nil && b.gemini.Enabled() {
		reply = b.aiReply(ctx, email, message)
	} else {
		reply = b.ruleReply(ctx, email, message)
	}

	if err := b.chat.Append(ctx, &models.ChatTurn{
		UserEmail: email,
		Message:   message,
		Reply:     reply,
	}); err != nil {
		return "", err
	}
	return reply, nil
}

// History returns the user's recent exchanges, oldest first.
func (b *Bot) History(ctx context.Context, email string, limit int) ([]models.ChatTurn, error) {
	return b.chat.History(ctx, email, limit)
}

func (b *Bot) ruleReply(ctx context.Context, email, message string) string {
	intent, title := Classify(message)

	switch intent {
	case IntentAddTask:
		if title == "" {
			return helpReply
		}
		task := &models.Task{
			UserEmail: email,
			Title:     b.titler.String(title),
			Priority:  models.PriorityMedium,
		}
		if err := b.tasks.Create(ctx, task); err != nil {
			return "Could not create task: " + err.Error()
		}
		return fmt.Sprintf("Task %q added.", task.Title)

	case IntentListTasks:
		tasks, err := b.tasks.List(ctx, email, repository.TaskFilter{})
		if err != nil {
			return "Could not list tasks: " + err.Error()
		}
		if len(tasks) == 0 {
			return "You have no tasks yet."
		}
		lines := make([]string, len(tasks))
		for i, t := range tasks {
			lines[i] = fmt.Sprintf("- %s (%s)", t.Title, t.Status)
		}
		return strings.Join(lines, "\n")

	case IntentCompleteTask:
		if title == "" {
			return helpReply
		}
		ok, err := b.tasks.CompleteByTitle(ctx, email, title)
		if err != nil {
			return "Could not complete task: " + err.Error()
		}
		if !ok {
			return fmt.Sprintf("Task %q not found.", title)
		}
		return fmt.Sprintf("Marked %q as completed.", title)

	case IntentDeleteTask:
		if title == "" {
			return helpReply
		}
		ok, err := b.tasks.DeleteByTitle(ctx, email, title)
		if err != nil {
			return "Could not delete task: " + err.Error()
		}
		if !ok {
			return fmt.Sprintf("Task %q not found.", title)
		}
		return fmt.Sprintf("Deleted task %q.", title)
	}

	return helpReply
}

// aiReply forwards the message to Gemini. The "add task: ..." convention is
// a user-facing command syntax, so the auto-task trigger is the user's
// message, not the model's reply.
func (b *Bot) aiReply(ctx context.Context, email, message string) string {
	reply, err := b.gemini.Generate(ctx, message)
	if err != nil {
		reply = "Gemini API error: " + err.Error()
	}

	if auto, ok := parseAutoTask(message); ok {
		if err := b.createAutoTask(ctx, email, auto); err != nil {
			reply += "\nCould not create task: " + err.Error()
		} else {
			reply += fmt.Sprintf("\nTask %q created successfully!", auto.Title)
		}
	}
	return reply
}

type autoTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
}

// parseAutoTask recognizes the "add task: title;description;priority;due_date"
// convention.
func parseAutoTask(message string) (autoTask, bool) {
	lower := strings.ToLower(message)
	if !strings.HasPrefix(lower, "add task:") {
		return autoTask{}, false
	}
	rest := message[len("add task:"):]
	parts := strings.Split(rest, ";")
	if len(parts) != 4 {
		return autoTask{Title: strings.TrimSpace(rest)}, true
	}
	return autoTask{
		Title:       strings.TrimSpace(parts[0]),
		Description: strings.TrimSpace(parts[1]),
		Priority:    capitalize(strings.TrimSpace(parts[2])),
		DueDate:     strings.TrimSpace(parts[3]),
	}, true
}

// createAutoTask validates the parsed fields against the task schema before
// inserting.
func (b *Bot) createAutoTask(ctx context.Context, email string, auto autoTask) error {
	doc, err := json.Marshal(auto)
	if err != nil {
		return err
	}
	res, err := b.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return err
	}
	if !res.Valid() {
		details := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			details = append(details, e.String())
		}
		return fmt.Errorf("invalid task: %s", strings.Join(details, "; "))
	}

	return b.tasks.Create(ctx, &models.Task{
		UserEmail:   email,
		Title:       auto.Title,
		Description: auto.Description,
		Priority:    auto.Priority,
		DueDate:     auto.DueDate,
	})
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
