package report

import (
	"context"

	"github.com/nguyentantai21042004/meeting-meter/internal/filler"
)

// Assembler turns a transcript into a clarity report on disk
type Assembler interface {
	Analyze(ctx context.Context, transcriptPath, outputPath string) (*Result, error)
}

// Result describes a written report
type Result struct {
	OutputPath string
	DocxPath   string
	Document   string
	Fillers    filler.Report
	Preview    string

	// NarrativeFailed is set when the model output was replaced by an error block
	NarrativeFailed bool
}
