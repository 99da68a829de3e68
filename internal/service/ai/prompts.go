package ai

import "fmt"

// landmarkSystemPrompt instructs the model to return literary landmarks as
// a strict JSON array of bilingual records.
const landmarkSystemPrompt = `You are a literary historian and cartographer.
Your task is to find at least 10 real-world locations in a specific city that are significantly featured in famous literature.
Ensure the locations are real, precise, and the literary connection is authentic.

For each landmark, return a JSON object containing both English ('en') and Chinese ('zh') translations.
Required fields:
1. name (en/zh) - The real name of the landmark.
2. bookTitle (en/zh) - The book it appears in.
3. author (en/zh) - The author.
4. quote (en/zh) - A relevant, famous quote describing this spot (approximate if exact is not available).
5. travelerNote (en/zh) - A helpful tip for a literary tourist visiting today.
6. lat (number) - Latitude.
7. lng (number) - Longitude.

Return strictly a JSON array of objects. Do not include markdown code blocks.`

// rawJSONSuffix is appended for chat-completion providers that have no
// structured-output schema support.
const rawJSONSuffix = " Output strictly raw JSON."

// GetLandmarkSystemPrompt returns the system instruction for landmark search.
// Chat-completion providers get an explicit raw-JSON suffix.
func GetLandmarkSystemPrompt(rawJSON bool) string {
	if rawJSON {
		return landmarkSystemPrompt + rawJSONSuffix
	}
	return landmarkSystemPrompt
}

// GetLandmarkUserPrompt returns the user message naming the city.
func GetLandmarkUserPrompt(city string) string {
	return fmt.Sprintf("Find at least 10 literary landmarks in %q.", city)
}

// GetEditImagePrompt returns the instruction for the image editing request.
func GetEditImagePrompt(instruction string) string {
	return fmt.Sprintf("Edit this image: %s. Maintain the aspect ratio. Return the edited image.", instruction)
}
