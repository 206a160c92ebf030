package llm

import (
	"fmt"
	"strings"
)

const (
	// FallbackPrompt is returned by the OpenAI adapter when the model replies with nothing.
	FallbackPrompt = "Create a [type] about [subject] with [specific details] in a [style] format."

	generateSystemPrompt = "You are an expert at creating effective AI prompts."
	enhanceSystemPrompt  = "You are an expert at improving AI prompts for clarity and effectiveness."

	generateMaxTokens = 500
	enhanceMaxTokens  = 800
)

// buildGenerateInstruction 对话式模型（OpenAI / 火山）使用的生成指令
func buildGenerateInstruction(req GenerateRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed, effective AI prompt about %s", strings.TrimSpace(req.Topic))
	if description := strings.TrimSpace(req.Description); description != "" {
		fmt.Fprintf(&b, " that addresses: %s", description)
	}
	if category := strings.TrimSpace(req.Category); category != "" {
		fmt.Fprintf(&b, ". This prompt should be appropriate for the category: %s", category)
	}
	b.WriteString(". The format should use placeholders like [placeholder] for variables users can customize.\n")
	b.WriteString("Make the prompt detailed, specific, and designed to get high-quality AI responses.\n")
	b.WriteString("Do not include explanations, just return the prompt text directly.")
	return b.String()
}

// buildEnhanceInstruction 要求模型以 JSON 返回建议
func buildEnhanceInstruction(prompt string) string {
	return fmt.Sprintf(`Analyze this AI prompt and suggest %d specific ways to enhance it for better results:

"%s"

Provide your suggestions in a clear, actionable format. Each suggestion should be complete and ready to implement.
Return a JSON object of the form {"suggestions": ["..."]}.`, MaxSuggestions, prompt)
}

// buildGeminiGenerateInstruction Gemini 生成指令，只返回提示词正文
func buildGeminiGenerateInstruction(req GenerateRequest) string {
	var b strings.Builder
	b.WriteString("Create a detailed and effective prompt for AI systems based on the following information:\n\n")
	fmt.Fprintf(&b, "Topic: %s\n", strings.TrimSpace(req.Topic))
	if description := strings.TrimSpace(req.Description); description != "" {
		fmt.Fprintf(&b, "Description: %s\n", description)
	}
	if category := strings.TrimSpace(req.Category); category != "" {
		fmt.Fprintf(&b, "Category: %s\n", category)
	}
	b.WriteString(`
Your response should be a well-structured prompt that:
1. Is clear and specific
2. Includes relevant context
3. Uses appropriate tone and style for the category
4. Includes any necessary parameters or constraints
5. Is optimized for getting high-quality results from AI

Respond with ONLY the prompt text, without any explanations, introductions or additional text.`)
	return b.String()
}

// buildGeminiEnhanceInstruction Gemini 的建议以空行分隔
func buildGeminiEnhanceInstruction(prompt string) string {
	return fmt.Sprintf(`Analyze and improve the following AI prompt:

"%s"

Provide %d different enhanced versions of this prompt that:
1. Make it more specific and detailed
2. Add more context and constraints
3. Improve clarity and optimize for better AI responses

Format your response as %d separate suggestions only, separated by a blank line, without any additional text, explanations or numbering.
Each suggestion should be a complete prompt that can be used as-is.`, prompt, MaxSuggestions, MaxSuggestions)
}
