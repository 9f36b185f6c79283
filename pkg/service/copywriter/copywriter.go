package copywriter

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"strings"
	"text/template"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/bussola-app/bussola/pkg/datefmt"
	"github.com/bussola-app/bussola/pkg/domain/interfaces"
	"github.com/bussola-app/bussola/pkg/domain/model"
)

//go:embed prompt/caption.md
var captionPromptTmpl string

var captionPrompt = template.Must(template.New("caption").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(captionPromptTmpl))

const (
	defaultMaxLength   = 600
	defaultMaxHashtags = 8
)

// ErrEmptyResponse is returned when the model answers with no text
var ErrEmptyResponse = goerr.New("copywriter returned empty response")

// Client drafts Instagram captions with an LLM
type Client struct {
	llm         gollem.LLMClient
	maxLength   int
	maxHashtags int
	clock       func() time.Time
}

var _ interfaces.Copywriter = &Client{}

type Option func(*Client)

// WithMaxLength bounds the caption text in characters
func WithMaxLength(n int) Option {
	return func(c *Client) {
		c.maxLength = n
	}
}

// WithMaxHashtags bounds the number of suggested hashtags
func WithMaxHashtags(n int) Option {
	return func(c *Client) {
		c.maxHashtags = n
	}
}

// WithClock overrides the clock used to phrase the publish date
func WithClock(clock func() time.Time) Option {
	return func(c *Client) {
		c.clock = clock
	}
}

func New(llm gollem.LLMClient, opts ...Option) *Client {
	c := &Client{
		llm:         llm,
		maxLength:   defaultMaxLength,
		maxHashtags: defaultMaxHashtags,
		clock:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type promptData struct {
	Format      string
	Title       string
	Description string
	Partners    []string
	PublishAt   string
	MaxLength   int
	MaxHashtags int
}

type captionResponse struct {
	Text     string   `json:"text"`
	Hashtags []string `json:"hashtags"`
}

var captionSchema = &gollem.Parameter{
	Title:       "Caption",
	Description: "Instagram caption for a planned post",
	Type:        gollem.TypeObject,
	Properties: map[string]*gollem.Parameter{
		"text": {
			Type:        gollem.TypeString,
			Description: "Caption text without hashtags",
			Required:    true,
		},
		"hashtags": {
			Type:        gollem.TypeArray,
			Description: "Suggested hashtags without the leading #",
			Items:       &gollem.Parameter{Type: gollem.TypeString},
			Required:    true,
		},
	},
}

// Caption drafts the caption of an action
func (c *Client) Caption(ctx context.Context, action *model.Action, category model.Category) (*model.Caption, error) {
	prompt, err := c.buildPrompt(action, category)
	if err != nil {
		return nil, err
	}

	session, err := c.llm.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(captionSchema),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create copywriter session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate caption", goerr.V("action_id", action.ID))
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.Wrap(ErrEmptyResponse, "no caption generated", goerr.V("action_id", action.ID))
	}

	return parseCaption(resp.Texts[0])
}

func (c *Client) buildPrompt(action *model.Action, category model.Category) (string, error) {
	data := promptData{
		Format:      category.Title,
		Title:       action.Title,
		Description: action.Description,
		Partners:    action.Partners,
		MaxLength:   c.maxLength,
		MaxHashtags: c.maxHashtags,
	}
	if data.Format == "" {
		data.Format = action.Category.String()
	}
	if publish := action.RelevantDate(true); !publish.IsZero() {
		s, err := datefmt.Format(publish, c.clock())
		if err != nil {
			return "", goerr.Wrap(err, "failed to format publish date")
		}
		data.PublishAt = s
	}

	var buf bytes.Buffer
	if err := captionPrompt.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to execute caption prompt template")
	}
	return buf.String(), nil
}

func parseCaption(raw string) (*model.Caption, error) {
	var resp captionResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to parse caption JSON", goerr.V("response", raw))
	}
	if strings.TrimSpace(resp.Text) == "" {
		return nil, goerr.Wrap(ErrEmptyResponse, "caption text is empty", goerr.V("response", raw))
	}

	caption := &model.Caption{Text: strings.TrimSpace(resp.Text)}
	for _, tag := range resp.Hashtags {
		tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
		if tag != "" {
			caption.Hashtags = append(caption.Hashtags, tag)
		}
	}
	return caption, nil
}
