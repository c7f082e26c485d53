package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/meeting-meter/internal/filler"
	"github.com/nguyentantai21042004/meeting-meter/internal/gemini"
)

const fillerHeading = "## Filler Word Analysis"

// Analyze reads the transcript, counts fillers, asks the model for the narrative
// and writes the combined document to outputPath.
// Model failures end up in the document; only file I/O errors are returned.
func (a *implAssembler) Analyze(ctx context.Context, transcriptPath, outputPath string) (*Result, error) {
	startTime := time.Now()
	log := a.logger.With("run_id", uuid.NewString())

	log.Info(ctx, "Analyzing transcript: %s", transcriptPath)

	content, err := os.ReadFile(transcriptPath)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	transcript := string(content)

	fillers := a.counter.Count(transcript)
	log.Info(ctx, "Counted %d filler phrases across %d speakers", fillers.Total(), len(fillers))

	narrative, failed := a.narrative(ctx, transcript)
	if failed {
		log.Warn(ctx, "Model analysis failed, writing error block instead")
	}

	doc := AppendFillerSection(narrative, fillers)

	if err := writeDocument(outputPath, doc); err != nil {
		return nil, err
	}

	result := &Result{
		OutputPath:      outputPath,
		Document:        doc,
		Fillers:         fillers,
		Preview:         Preview(doc, a.previewLines),
		NarrativeFailed: failed,
	}

	if a.docx {
		docxPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".docx"
		title := strings.TrimSuffix(filepath.Base(transcriptPath), filepath.Ext(transcriptPath))
		if err := markdownToDocx(title, doc, docxPath); err != nil {
			log.Warn(ctx, "Failed to write DOCX %s: %v", docxPath, err)
		} else {
			result.DocxPath = docxPath
		}
	}

	log.Info(ctx, "[DONE] %s -> %s (%s)", transcriptPath, outputPath, time.Since(startTime))
	return result, nil
}

// narrative returns the model's analysis, or a labelled error block and true when the call failed
func (a *implAssembler) narrative(ctx context.Context, transcript string) (string, bool) {
	text, err := a.client.Generate(ctx, BuildPrompt(transcript))
	if err == nil {
		return text, false
	}

	a.logger.Error(ctx, "Gemini analysis failed: %v", err)

	var envErr *gemini.EnvelopeError
	if errors.As(err, &envErr) {
		return fmt.Sprintf("[Error parsing Gemini response]\n%v\n\nFull response:\n%s", envErr.Cause, envErr.Payload), true
	}
	return fmt.Sprintf("[Error calling Gemini]\n%v", err), true
}

// AppendFillerSection appends the per-speaker filler tally to text.
// An empty report leaves text untouched.
func AppendFillerSection(text string, fillers filler.Report) string {
	if fillers.Empty() {
		return text
	}

	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n---\n\n" + fillerHeading + "\n")
	for _, sc := range fillers {
		fmt.Fprintf(&b, "\n**%s**\n", sc.Speaker)
		for _, pc := range sc.Counts {
			fmt.Fprintf(&b, "- %s: %d\n", pc.Phrase, pc.Count)
		}
	}
	return b.String()
}

// Preview returns the first n lines of the trimmed document
func Preview(text string, n int) string {
	if n <= 0 {
		n = 6
	}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

func writeDocument(path, doc string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
