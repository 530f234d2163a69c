package prompts

import "fmt"

// ===== OCR Prompts =====

// OCRSystemPrompt returns the system prompt for transcribing survey images
func OCRSystemPrompt() string {
	return `You transcribe scanned or photographed health survey forms.

Rules:
1. Output only the text that appears in the image, one field per line.
2. Keep field labels and answers exactly as written, formatted as "Label: Answer".
3. Checked boxes or circled options become the answer text (for example "Smoker: yes").
4. Leave out answers you cannot read. Do not guess or add commentary.
5. If the image contains no readable text, output nothing.`
}

// OCRUserPrompt builds the instruction that accompanies the image
func OCRUserPrompt(fields []string) string {
	return fmt.Sprintf(`Transcribe this health survey. Fields of interest: %v.
Other fields on the form may be included as well.`, fields)
}
