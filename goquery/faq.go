package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
)

// questionMark matches both the Latin and the Arabic-script question mark.
var questionMark = regexp.MustCompile(`[?؟]`)

// extractFAQ takes the text of every element whose class contains "faq"
// and splits it into question/answer pairs. Blocks with no valid split
// contribute an empty mapping; the engine never fails on them.
func (d *Document) extractFAQ() []pagemeta.QA {
	var faqs []pagemeta.QA
	d.AllContains("class", "faq").Each(func(_ int, s *goquery.Selection) {
		text, ok := elementText(s)
		if !ok {
			return
		}
		faqs = append(faqs, SplitQuestionAnswer(text))
	})
	return faqs
}

// SplitQuestionAnswer splits text at the first question-mark-like character
// into a question part and an answer part. The pair is accepted only when
// both parts are non-blank after trimming; otherwise the mapping is empty.
func SplitQuestionAnswer(text string) pagemeta.QA {
	qa := pagemeta.QA{}
	loc := questionMark.FindStringIndex(text)
	if loc == nil {
		return qa
	}
	question := strings.TrimSpace(text[:loc[0]])
	answer := strings.TrimSpace(text[loc[1]:])
	if question == "" || answer == "" {
		return qa
	}
	qa[question] = answer
	return qa
}
