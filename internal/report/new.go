package report

import (
	"github.com/nguyentantai21042004/meeting-meter/internal/config"
	"github.com/nguyentantai21042004/meeting-meter/internal/filler"
	"github.com/nguyentantai21042004/meeting-meter/internal/gemini"
	"github.com/nguyentantai21042004/meeting-meter/internal/logger"
)

type implAssembler struct {
	client       gemini.Client
	counter      filler.Counter
	logger       logger.Logger
	docx         bool
	previewLines int
}

// New creates an Assembler that asks client for the narrative and counter for the filler tally
func New(cfg *config.Config, client gemini.Client, counter filler.Counter, log logger.Logger) Assembler {
	return &implAssembler{
		client:       client,
		counter:      counter,
		logger:       log,
		docx:         cfg.Report.Docx,
		previewLines: cfg.Report.PreviewLines,
	}
}
