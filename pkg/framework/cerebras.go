package framework

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultCerebrasBaseURL is the production Cerebras inference endpoint.
const DefaultCerebrasBaseURL = "https://api.cerebras.ai/v1"

//go:embed models.yaml
var cerebrasModelsYAML []byte

type cerebrasModel struct {
	Name          string  `yaml:"name"`
	InputPerMTok  float64 `yaml:"input_per_mtok"`
	OutputPerMTok float64 `yaml:"output_per_mtok"`
}

type cerebrasCatalog struct {
	Models []cerebrasModel `yaml:"models"`
}

// loadCerebrasCatalog parses the embedded model table once.
var loadCerebrasCatalog = sync.OnceValue(func() map[string]cerebrasModel {
	var catalog cerebrasCatalog
	if err := yaml.Unmarshal(cerebrasModelsYAML, &catalog); err != nil {
		// The table is embedded at build time; a parse failure is a
		// packaging bug, not a runtime condition.
		panic(fmt.Sprintf("framework: embedded models.yaml is invalid: %v", err))
	}
	models := make(map[string]cerebrasModel, len(catalog.Models))
	for _, m := range catalog.Models {
		models[m.Name] = m
	}
	return models
})

// CerebrasPlugin runs a single-turn chat completion against the
// Cerebras inference API. With stream enabled it parses the SSE
// response and forwards each content delta to the log sink.
type CerebrasPlugin struct {
	// BaseURL and Client exist so tests can point the plugin at a
	// local server. Zero values select production defaults.
	BaseURL string
	Client  *http.Client
}

// NewCerebrasPlugin returns the cerebras framework plugin.
func NewCerebrasPlugin() *CerebrasPlugin {
	return &CerebrasPlugin{
		BaseURL: DefaultCerebrasBaseURL,
		Client:  &http.Client{},
	}
}

// Name implements Plugin.
func (p *CerebrasPlugin) Name() string {
	return "cerebras"
}

// Schema implements Plugin.
func (p *CerebrasPlugin) Schema() *Schema {
	models := loadCerebrasCatalog()
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	return &Schema{
		Fields: map[string]Field{
			"model": {
				Type:        FieldString,
				Description: "Cerebras model name",
				Required:    true,
				Enum:        names,
			},
			"temperature": {
				Type: FieldNumber,
				Min:  floatPtr(0),
				Max:  floatPtr(2),
			},
			"max_tokens": {
				Type: FieldNumber,
				Min:  floatPtr(1),
			},
			"stream": {
				Type:        FieldBool,
				Description: "Stream deltas into the execution log",
				Default:     false,
			},
			"api_key": {
				Type:        FieldString,
				Description: "Overrides the CEREBRAS_API_KEY environment variable",
			},
		},
	}
}

// Validate implements Plugin.
func (p *CerebrasPlugin) Validate(cfg Config) []string {
	return p.Schema().Check(cfg)
}

type cerebrasMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type cerebrasRequest struct {
	Model       string            `json:"model"`
	Messages    []cerebrasMessage `json:"messages"`
	Temperature *float64          `json:"temperature,omitempty"`
	MaxTokens   *int              `json:"max_tokens,omitempty"`
	Stream      bool              `json:"stream,omitempty"`
}

type cerebrasUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type cerebrasResponse struct {
	Choices []struct {
		Message cerebrasMessage `json:"message"`
	} `json:"choices"`
	Usage cerebrasUsage `json:"usage"`
}

type cerebrasChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
	Usage *cerebrasUsage `json:"usage"`
}

// Execute implements Plugin.
func (p *CerebrasPlugin) Execute(ctx context.Context, run *RunContext) (*Result, error) {
	model, _ := run.Config.String("model")
	pricing, ok := loadCerebrasCatalog()[model]
	if !ok {
		return nil, fmt.Errorf("unknown model %q", model)
	}

	apiKey, _ := run.Config.String("api_key")
	if apiKey == "" {
		apiKey = os.Getenv("CEREBRAS_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no API key: set api_key in the agent configuration or CEREBRAS_API_KEY")
	}

	stream, _ := run.Config.Bool("stream")
	reqBody := cerebrasRequest{
		Model:    model,
		Messages: []cerebrasMessage{{Role: "user", Content: run.Input}},
		Stream:   stream,
	}
	if t, ok := run.Config.Number("temperature"); ok {
		reqBody.Temperature = &t
	}
	if mt, ok := run.Config.Number("max_tokens"); ok {
		n := int(mt)
		reqBody.MaxTokens = &n
	}

	raw, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	baseURL := p.BaseURL
	if baseURL == "" {
		baseURL = DefaultCerebrasBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/chat/completions", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := p.Client
	if client == nil {
		client = &http.Client{}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling cerebras: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("cerebras returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var content string
	var usage cerebrasUsage
	if stream {
		content, usage, err = p.consumeStream(ctx, resp.Body, run)
	} else {
		content, usage, err = p.consumeResponse(resp.Body)
	}
	if err != nil {
		return nil, err
	}

	run.Progress(100)

	cost := float64(usage.PromptTokens)*pricing.InputPerMTok/1e6 +
		float64(usage.CompletionTokens)*pricing.OutputPerMTok/1e6

	return &Result{
		Output:     map[string]any{"content": content, "model": model},
		TokensUsed: usage.TotalTokens,
		CostUSD:    cost,
	}, nil
}

// consumeResponse parses the non-streaming completion body.
func (p *CerebrasPlugin) consumeResponse(body io.Reader) (string, cerebrasUsage, error) {
	var parsed cerebrasResponse
	if err := json.NewDecoder(body).Decode(&parsed); err != nil {
		return "", cerebrasUsage{}, fmt.Errorf("decoding response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", cerebrasUsage{}, fmt.Errorf("response contains no choices")
	}
	return parsed.Choices[0].Message.Content, parsed.Usage, nil
}

// consumeStream parses SSE chunks, forwarding each content delta to
// the log sink and accumulating the full completion. Usage arrives on
// the final chunk.
func (p *CerebrasPlugin) consumeStream(ctx context.Context, body io.Reader, run *RunContext) (string, cerebrasUsage, error) {
	var builder strings.Builder
	var usage cerebrasUsage

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return "", usage, err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			break
		}

		var chunk cerebrasChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return "", usage, fmt.Errorf("decoding stream chunk: %w", err)
		}
		if chunk.Usage != nil {
			usage = *chunk.Usage
		}
		if len(chunk.Choices) > 0 {
			if delta := chunk.Choices[0].Delta.Content; delta != "" {
				builder.WriteString(delta)
				run.Log(LevelDebug, delta, map[string]any{"stream": true})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", usage, fmt.Errorf("reading stream: %w", err)
	}

	return builder.String(), usage, nil
}
