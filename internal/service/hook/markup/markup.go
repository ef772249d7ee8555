// Package markup Qiita:Team이 렌더링한 HTML 본문(rendered_body)을 채팅 서비스가 표시할 수 있는
// 텍스트 형식으로 변환합니다.
//
//   - ToSlack: Slack mrkdwn (굵게 *x*, 기울임 _x_, 링크 <url|text> 등)
//   - ToPlainText: 서식이 없는 일반 텍스트 (ChatWork, Telegram 등)
package markup

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

// flavor 출력 형식
type flavor int

const (
	flavorSlack flavor = iota
	flavorPlain
)

const (
	bulletMark = "• "
	listIndent = "    "
	ruleLine   = "-----"
)

var (
	reExcessiveNewlines = regexp.MustCompile(`\n{3,}`)
	reWhitespaces       = regexp.MustCompile(`[ \t\r\n\f]+`)
)

var slackEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// ToSlack HTML 본문을 Slack mrkdwn 텍스트로 변환합니다.
// 파싱할 수 없는 입력은 태그를 제거하지 않은 원문을 이스케이프하여 반환합니다.
func ToSlack(rendered string) string {
	return render(rendered, flavorSlack)
}

// ToPlainText HTML 본문에서 서식을 제거한 일반 텍스트를 반환합니다.
// 링크는 "텍스트 (URL)" 형태로 남습니다.
func ToPlainText(rendered string) string {
	return render(rendered, flavorPlain)
}

// EscapeSlack Slack 메시지 텍스트에서 제어 문자로 해석되는 &, <, > 를 이스케이프합니다.
func EscapeSlack(s string) string {
	return slackEscaper.Replace(s)
}

func render(rendered string, f flavor) string {
	if strings.TrimSpace(rendered) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rendered))
	if err != nil {
		if f == flavorSlack {
			return EscapeSlack(rendered)
		}
		return rendered
	}

	r := &renderer{flavor: f}

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			sb.WriteString(r.children(n, state{}))
		}
	})

	return cleanup(norm.NFC.String(sb.String()))
}

// state 트리를 내려가며 전달되는 렌더링 상태
type state struct {
	pre       bool
	listDepth int
}

type renderer struct {
	flavor flavor
}

func (r *renderer) children(n *html.Node, st state) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(r.node(c, st))
	}
	return sb.String()
}

func (r *renderer) node(n *html.Node, st state) string {
	switch n.Type {
	case html.TextNode:
		return r.text(n, st)
	case html.ElementNode:
		return r.element(n, st)
	case html.DocumentNode:
		return r.children(n, st)
	default:
		return ""
	}
}

func (r *renderer) text(n *html.Node, st state) string {
	s := n.Data
	if !st.pre {
		if strings.TrimSpace(s) == "" && n.Parent != nil && isBlockContainer(n.Parent.DataAtom) {
			return ""
		}
		s = reWhitespaces.ReplaceAllString(s, " ")
	}
	return r.escape(s)
}

func (r *renderer) element(n *html.Node, st state) string {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Head, atom.Template:
		return ""

	case atom.Br:
		return "\n"

	case atom.Hr:
		return block(ruleLine)

	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return block(r.wrap("*", r.children(n, st)))

	case atom.P, atom.Div, atom.Section, atom.Article, atom.Header, atom.Footer, atom.Dl, atom.Details:
		return block(r.children(n, st))

	case atom.Dt, atom.Dd, atom.Summary, atom.Figcaption:
		return strings.TrimSpace(r.children(n, st)) + "\n"

	case atom.Strong, atom.B:
		return r.wrap("*", r.children(n, st))

	case atom.Em, atom.I:
		return r.wrap("_", r.children(n, st))

	case atom.Del, atom.S, atom.Strike:
		return r.wrap("~", r.children(n, st))

	case atom.Code:
		if st.pre {
			return r.children(n, st)
		}
		return r.wrap("`", r.children(n, st))

	case atom.Pre:
		return r.pre(n, st)

	case atom.A:
		return r.link(n, st)

	case atom.Img:
		return r.image(n)

	case atom.Input:
		return checkbox(n)

	case atom.Ul, atom.Ol:
		return r.list(n, st)

	case atom.Li:
		// ul/ol 바깥에 있는 li
		return bulletMark + strings.TrimSpace(r.children(n, st)) + "\n"

	case atom.Blockquote:
		return r.blockquote(n, st)

	case atom.Table:
		return r.table(n, st)

	default:
		return r.children(n, st)
	}
}

func (r *renderer) pre(n *html.Node, st state) string {
	st.pre = true
	body := strings.TrimRight(r.children(n, st), "\n")
	if r.flavor == flavorSlack {
		return "\n\n```\n" + body + "\n```\n\n"
	}
	return "\n\n" + body + "\n\n"
}

func (r *renderer) link(n *html.Node, st state) string {
	label := strings.TrimSpace(r.children(n, st))
	href := strings.TrimSpace(attr(n, "href"))

	if href == "" || strings.HasPrefix(href, "#") {
		return label
	}

	if r.flavor == flavorSlack {
		if label == "" || label == r.escape(href) {
			return "<" + href + ">"
		}
		return "<" + href + "|" + label + ">"
	}

	if label == "" || label == href {
		return href
	}
	return label + " (" + href + ")"
}

func (r *renderer) image(n *html.Node) string {
	src := strings.TrimSpace(attr(n, "src"))
	alt := strings.TrimSpace(attr(n, "alt"))

	// 이모지 이미지는 :code: 형태의 alt를 그대로 사용합니다.
	if hasClass(n, "emoji") && alt != "" {
		return alt
	}

	if src == "" {
		return r.escape(alt)
	}

	if r.flavor == flavorSlack {
		if alt == "" {
			return "<" + src + ">"
		}
		return "<" + src + "|" + r.escape(alt) + ">"
	}

	if alt == "" {
		return src
	}
	return alt + " (" + src + ")"
}

func (r *renderer) list(n *html.Node, st state) string {
	ordered := n.DataAtom == atom.Ol
	index := 1
	if ordered {
		if v, err := strconv.Atoi(attr(n, "start")); err == nil {
			index = v
		}
	}

	indent := strings.Repeat(listIndent, st.listDepth)
	inner := st
	inner.listDepth++

	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Li {
			continue
		}

		marker := bulletMark
		if ordered {
			marker = strconv.Itoa(index) + ". "
			index++
		}

		content := strings.TrimSpace(reExcessiveNewlines.ReplaceAllString(r.children(c, inner), "\n"))
		content = strings.ReplaceAll(content, "\n\n", "\n")

		sb.WriteString(indent)
		sb.WriteString(marker)
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	if st.listDepth > 0 {
		return "\n" + strings.TrimRight(sb.String(), "\n")
	}
	return block(sb.String())
}

func (r *renderer) blockquote(n *html.Node, st state) string {
	content := cleanup(r.children(n, st))
	if content == "" {
		return ""
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight("> "+line, " ")
	}
	return block(strings.Join(lines, "\n"))
}

func (r *renderer) table(n *html.Node, st state) string {
	doc := goquery.NewDocumentFromNode(n)

	var rows []string
	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Children().Each(func(_ int, cell *goquery.Selection) {
			if !cell.Is("td, th") {
				return
			}
			var sb strings.Builder
			for _, cn := range cell.Nodes {
				sb.WriteString(r.children(cn, st))
			}
			cells = append(cells, strings.TrimSpace(reWhitespaces.ReplaceAllString(sb.String(), " ")))
		})
		if len(cells) > 0 {
			rows = append(rows, strings.Join(cells, " | "))
		}
	})

	return block(strings.Join(rows, "\n"))
}

// wrap 서식 기호로 내용을 감쌉니다. 일반 텍스트 형식이거나 내용이 비어 있으면 기호를 생략합니다.
func (r *renderer) wrap(mark, content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return content
	}
	if r.flavor == flavorPlain {
		return trimmed
	}

	// Slack은 기호 안쪽에 공백이 있으면 서식을 적용하지 않으므로 공백을 기호 바깥으로 옮깁니다.
	leading := content[:strings.Index(content, trimmed)]
	trailing := content[len(leading)+len(trimmed):]
	return leading + mark + trimmed + mark + trailing
}

func (r *renderer) escape(s string) string {
	if r.flavor == flavorSlack {
		return EscapeSlack(s)
	}
	return s
}

func block(content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}
	return "\n\n" + content + "\n\n"
}

func checkbox(n *html.Node) string {
	if !strings.EqualFold(attr(n, "type"), "checkbox") {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == "checked" {
			return "☑"
		}
	}
	return "☐"
}

// cleanup 줄 끝 공백을 제거하고 연속된 빈 줄을 하나로 줄입니다.
func cleanup(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	s = strings.Join(lines, "\n")
	s = reExcessiveNewlines.ReplaceAllString(s, "\n\n")
	return strings.Trim(s, "\n")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func isBlockContainer(a atom.Atom) bool {
	switch a {
	case atom.Body, atom.Div, atom.Section, atom.Article, atom.Header, atom.Footer,
		atom.Ul, atom.Ol, atom.Blockquote, atom.Table, atom.Thead, atom.Tbody, atom.Tfoot, atom.Tr,
		atom.Dl, atom.Details:
		return true
	default:
		return false
	}
}
