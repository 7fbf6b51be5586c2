package testutil

// SampleTranscription is a short meeting transcription.
const SampleTranscription = "今日は会議の議事録です。予算について話しました。"

// SampleScriptJSON is a well-formed generation result for SampleTranscription.
const SampleScriptJSON = `{
  "title": "会議の議事録",
  "summary": "予算についての議論をまとめた会議です。",
  "sections": [
    {
      "heading": "導入",
      "points": ["会議の目的を共有"],
      "timestamp": "00:00"
    },
    {
      "heading": "予算",
      "points": ["来期の予算案を確認", "削減項目を検討"]
    }
  ]
}`

// TruncatedScriptJSON is cut off mid-document.
const TruncatedScriptJSON = `{"title": "会議の議事録", "summary": "予算について", "sections": [{"heading": "導`

// WrongShapeScriptJSON is valid JSON whose points are not strings.
const WrongShapeScriptJSON = `{"title": "会議", "summary": "要約", "sections": [{"heading": "予算", "points": [1, 2]}]}`
