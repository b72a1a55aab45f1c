package aiquiz

import "fmt"

const promptTemplate = `
あなたは日本の中学3年生向けの英語文法問題を作成する専門家です。
以下の条件に従って、高品質な問題を%s問、JSON形式で生成してください。

# 条件
- 文法単元: 「%s」
- 想定教科書: 「%s」
- 問題形式: 'choice' (選択), 'reorder' (並べ替え), 'form-change' (語形変化), 'fill-in' (空欄補充) のいずれかを適切に割り振ること。
- 全ての問題に、自然な日本語訳を付けること。
- 高校入試レベルの、典型的で重要な問題を作成すること。
- 類義表現や対義表現が学べるような、示唆に富んだ問題にすること。
- イディオムや重要な構文を自然に含めること。

# JSON出力形式
- 必ず以下の構造を持つJSON配列として出力してください。
- 'reorder'形式の場合、'question'プロパティは単語の配列にしてください。
- 'choice'形式の場合、'options'プロパティに3つの選択肢を入れてください。

[
  {
    "id": 1,
    "type": "choice",
    "question": "This is the most interesting movie ( _______ ) I have ever seen.",
    "options": ["which", "who", "that"],
    "answer": "that",
    "translation": "これは私が今までに見た中で最高の映画です。",
    "unit": "関係代名詞"
  }
]
`

// BuildPrompt embeds count, unit and textbook verbatim; nothing is escaped
// or range-checked.
func BuildPrompt(req GenerationRequest) string {
	return fmt.Sprintf(promptTemplate, req.Count, req.Unit, req.Textbook)
}
