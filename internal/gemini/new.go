package gemini

import (
	"sync"
	"time"

	"github.com/nguyentantai21042004/meeting-meter/internal/logger"
)

// Options configures the Gemini client
type Options struct {
	APIKeys []string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type implClient struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	logger     logger.Logger
	model      string
	baseURL    string
	timeout    time.Duration
}

// New creates a Client that rotates through the supplied Gemini API keys
func New(opts Options, log logger.Logger) Client {
	model := opts.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &implClient{
		apiKeys: opts.APIKeys,
		logger:  log,
		model:   model,
		baseURL: opts.BaseURL,
		timeout: opts.Timeout,
	}
}
