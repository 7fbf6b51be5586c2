package script

// DefaultSystemPrompt instructs the chat model to return the Document shape
// as JSON. It can be replaced through configuration.
const DefaultSystemPrompt = `あなたはプロの編集者です。以下の文字起こしテキストを元に、話の流れが分かりやすい「トークスクリプト」を作成してください。
以下のJSON形式で出力してください。

{
  "title": "タイトル",
  "summary": "要約（3〜5行）",
  "sections": [
    {
      "heading": "セクションの見出し",
      "points": ["要点1", "要点2"],
      "timestamp": "おおよその時間（例：00:00–03:00）※もし分かれば"
    }
  ]
}
`

// DefaultSummaryLabel heads the summary block in the text rendering.
const DefaultSummaryLabel = "要約"
