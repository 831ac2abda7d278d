package llm

import (
	"fmt"
	"strings"
)

// System prompts per task. The user prompts below assume exactly these
// pairings; downstream parsing depends on the response shapes they mandate.
const (
	ExtractionSystemPrompt = "You are a strict JSON generator. Always return valid JSON only."
	ScoringSystemPrompt    = "Return only a number 0-10."
	QuestionsSystemPrompt  = "You are an expert in coming up with follow up questions to uncover deeper insights."
	AnalyticsSystemPrompt  = "You are an expert in analyzing interview transcripts. You must only use the main questions provided and not generate or infer additional questions."
)

// ExtractionPrompt renders the structured-resume extraction prompt.
func ExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`Extract the following structured JSON from the provided resume text.
Return strictly valid JSON with keys: skills (string[]), experience (Array<{company:string, role:string, start?:string, end?:string, details?:string[]}>), projects (Array<{name:string, description?:string, tech?:string[]}>), education (Array<{institution:string, degree?:string, start?:string, end?:string}>), certifications (string[]), summary (string).

Resume:
%s`, resumeText)
}

// ScoringPrompt renders the resume-to-role suitability scoring prompt.
func ScoringPrompt(resumeText, jobPosition string) string {
	return fmt.Sprintf(`Given the resume text below and the target job position %q, provide a single integer score from 0 to 10 indicating suitability. Consider relevant skills, experience, and education. Only return the number.

Resume:
%s`, jobPosition, resumeText)
}

// QuestionsPromptInput carries the context for tailored-question generation.
type QuestionsPromptInput struct {
	Name      string
	Objective string
	Number    int
	JDText    string
	CVText    string
	Context   string
	PastNotes string
}

// QuestionsPrompt renders the tailored-question generation prompt. The
// response contract is a JSON object with a "questions" array of exactly
// Number {question} objects plus a "description" string.
func QuestionsPrompt(in QuestionsPromptInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are an interviewer specialized in designing structured screening questions that help hiring managers evaluate both human and technical aspects of candidates.

Interview Title: %s
Interview Objective: %s
Number of NEW questions to generate: %d

CONTEXT TO USE (if provided):
- Job Description (JD): %s
- Candidate CV (verbatim text): %s
- Past Interview Notes: %s
- Additional info (if present): %s
`, in.Name, in.Objective, in.Number, orNA(in.JDText), orNA(in.CVText), orNA(in.PastNotes), orNA(in.Context))

	fmt.Fprintf(&b, `
GOALS
- Automate the initial HR screening to capture essential candidate insights.
- Cover BOTH:
  a) HR dimensions: growth mindset, business thinking, critical thinking, posture & communication, motivation, cultural fit.
  b) Technical depth (if JD is technical), problem-solving ability, and project experience.
- Questions must feel conversational, open-ended, and relevant to the candidate's profile and JD.

GUIDELINES
1) Generate exactly %d open-ended questions (<= 30 words each).
2) Include a mix of:
   - HR-focused screening questions (career goals, adaptability, motivation, culture, decision-making).
   - JD/CV-tailored technical or project-related questions (only if JD is technical).
3) Avoid duplicates of fixed questions or simple CV facts unless clarification is required.
4) Maintain a professional but approachable tone.

OUTPUT FORMAT (STRICT)
- Return a single JSON object with exactly the keys "questions" and "description".
- "questions" MUST be an array of objects with ONLY the key "question".
  Example: { "questions": [ { "question": "..." }, ... ], "description": "..." }
- "description" MUST be a second-person, <= 50-word blurb telling the candidate what this screening interview will cover, without copying the exact objective text.

NOW PRODUCE:
- Exactly %d questions blending HR + JD-based technical focus as described.
- Then produce "description".`, in.Number, in.Number)

	return b.String()
}

// AnalyticsPrompt renders the transcript-analytics prompt.
func AnalyticsPrompt(transcript, mainQuestions string) string {
	return fmt.Sprintf(`Analyse the following interview transcript and provide structured feedback.

###
Transcript:
%s

###
Main Interview Questions:
%s

TASKS
1. Overall Score (0-100) and Overall Feedback (<= 60 words).
   Factors: communication, response time, confidence, clarity, attitude, relevance, knowledge depth, problem-solving, use of examples, listening, consistency, adaptability.
2. Communication Skills: Score (0-10) and Feedback (<= 60 words).
3. Question Summaries: For EACH main question:
   - If not found in transcript -> "Not Asked".
   - If found but no answer -> "Not Answered".
   - If found with answer -> cohesive paragraph including candidate's response and follow-ups (if any).
   Always output every provided main question with its number intact.
4. Soft Skill Summary: One sentence, 10-15 words, covering confidence, leadership, adaptability, critical thinking, decision making.

OUTPUT FORMAT (STRICT JSON)
{
  "overallScore": number,
  "overallFeedback": string,
  "communication": {
    "score": number,
    "feedback": string
  },
  "questionSummaries": [
    { "question": string, "summary": string }
  ],
  "softSkillSummary": string
}

CONSTRAINTS
- Always include: overallScore, overallFeedback, communication, questionSummaries, softSkillSummary.`, transcript, mainQuestions)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
