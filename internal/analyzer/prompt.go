package analyzer

import "fmt"

const promptTemplate = `You are an expert fact-checker and media analyst specializing in detecting fake news and misinformation.
Analyze the following news article text for credibility, authenticity, and potential misinformation.

Please analyze these aspects:
1. Source credibility and attribution
2. Factual accuracy and verifiable claims
3. Emotional manipulation and sensational language
4. Missing context or supporting evidence
5. Logical consistency and coherence
6. Signs of propaganda or deliberate misinformation

Article Text:
%s

Please provide your analysis in the following JSON format:
{
    "credibility_score": [number from 0-10],
    "verdict": "[CREDIBLE/SUSPICIOUS/FAKE/MIXED]",
    "confidence": [number from 0-100],
    "analysis": "[detailed explanation of your findings]",
    "red_flags": "[main credibility concerns]",
    "credibility_factors": "[positive credibility indicators]",
    "verification_tips": "[suggestions for fact-checking]"
}

IMPORTANT: Return ONLY the JSON object, no additional text before or after.`

// BuildPrompt renders the analysis instructions with the article text
// interpolated once. Assumes ValidateArticleText already ran.
func BuildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}
