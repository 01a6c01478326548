package locator

// locatePrompt is the user message template. First hole is the topic, second
// the formatted transcript.
const locatePrompt = `You are an API that ONLY outputs raw, valid JSON. Do not use markdown blocks like ` + "```json" + `.

Here is the transcript of a video, one caption per line, each prefixed with its [HH:MM:SS] start time. Find the FIRST moment the speaker actually starts discussing the concept of: "%s".
Scan the transcript from the top and answer with the earliest such moment. The speaker might not use these exact words, so look for the meaning and context, not just the literal phrase.
Ignore chapter announcements or section titles that merely name the topic without discussing it.

Transcript:
%s

Return ONLY a JSON object with this exact structure:
{
    "timestamp": "HH:MM:SS"
}`
