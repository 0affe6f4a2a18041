package openai

import "fmt"

const proofreadingResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "corrected_text": {
      "type": "string"
    },
    "corrections": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "original": { "type": "string" },
          "replacement": { "type": "string" },
          "reason": { "type": "string" }
        },
        "required": ["original", "replacement", "reason"],
        "additionalProperties": false
      }
    }
  },
  "required": ["corrected_text", "corrections"],
  "additionalProperties": false
}`

const proofreadingPromptTemplate = `You are a careful proofreader for text written in %s.

Fix grammar, spelling, punctuation and agreement errors in the text given by the user. Keep the
author's meaning, tone and wording wherever it is already correct. Do not translate the text.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble,
explanation, greeting, or acknowledgment. Start your response directly with the opening brace { and
end with the closing brace }. Your output must exactly follow this schema:

%s

Rules:
- "corrected_text" is the complete text with every correction applied.
- Each entry in "corrections" covers one change: the fragment as written, its replacement, and a short reason.
- List corrections in the order they appear in the text.
- If the text has no errors, return it unchanged with "corrections": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "she dont like apples"
Output:
{
  "corrected_text": "She doesn't like apples.",
  "corrections": [
    {"original":"she","replacement":"She","reason":"Sentences start with a capital letter."},
    {"original":"dont","replacement":"doesn't","reason":"Third person singular takes 'does not'."},
    {"original":"apples","replacement":"apples.","reason":"Missing final period."}
  ]
}`

// buildSystemPrompt creates the system prompt for the given language name.
func buildSystemPrompt(languageName string) string {
	return fmt.Sprintf(proofreadingPromptTemplate, languageName, proofreadingResponseSchema)
}
