package feedclient

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// DefaultPreviewLength 는 목록 화면에 보여줄 본문 미리보기 길이(rune 기준)이다.
const DefaultPreviewLength = 140

// Preview 는 포스트 본문(일부 HTML 이 섞일 수 있음)에서 텍스트 노드만 모아
// 공백을 정리한 뒤 maxRunes 이하로 자른다. 잘린 경우 "…" 를 붙인다.
func Preview(content string, maxRunes int) string {
	if maxRunes <= 0 {
		maxRunes = DefaultPreviewLength
	}

	text := plainText(content)
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:maxRunes])) + "…"
}

func plainText(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return strings.Join(strings.Fields(content), " ")
	}

	var b strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if b.Len() > 0 {
					b.WriteString(" ")
				}
				b.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(doc)

	return strings.Join(strings.Fields(b.String()), " ")
}
