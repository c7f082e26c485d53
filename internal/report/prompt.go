package report

import "fmt"

const analysisPrompt = `
You are a professional communication analyst evaluating a meeting transcript for clarity and effectiveness.

Instructions:
1. Identify vague, overused, or meaningless business jargon (e.g., "circle back", "synergy", "touch base").
2. Rate the **overall meeting clarity** from 1 (vague) to 10 (clear and productive).
3. For **each speaker** (e.g., SPEAKER_00), do the following:
   - Quote 1-2 examples of vague, repetitive, or filler language they used.
   - **List the filler words they used and estimate counts** (e.g., "um", "like", "you know").
   - Rate their individual clarity from 1-10.
   - Note any patterns of repetition or tangents.
   - Provide constructive suggestions to improve future communication.
4. Comment on **meeting dynamics**:
   - Were there **interruptions** or overlapping dialogue? If yes, by whom?
   - Was one speaker **dominant**, or was talk-time balanced?

5. Conclude with a brief improvement report:
   - Overall meeting clarity score
   - Top 3 jargon phrases to avoid
   - 3 specific suggestions to improve meeting effectiveness

Format the entire output in clean, well-structured **Markdown**.

Transcript:
%s
`

// BuildPrompt embeds the unmodified transcript into the analysis instructions
func BuildPrompt(transcript string) string {
	return fmt.Sprintf(analysisPrompt, transcript)
}
