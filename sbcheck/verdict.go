package sbcheck

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	ReplySafe       = "safe"
	maxDetailLength = 200
)

// Interpret maps a lookup result to a verdict. An empty body on 200 or 204
// means the url is safe, any other body is the label the service gave it.
func Interpret(res Result) Verdict {

	v := Verdict{StatusCode: res.StatusCode}

	switch res.StatusCode {
	case 0:
		v.Outcome = OutcomeNoResponse
		v.Message = "Something went wrong while performing your request."

	case http.StatusOK, http.StatusNoContent:
		v.Message = fmt.Sprintf("Your code is: %d %s.", res.StatusCode, StatusText(res.StatusCode))
		label := strings.TrimSpace(string(res.Body))
		if label == "" {
			v.Outcome = OutcomeSafe
			v.Label = ReplySafe
		} else {
			v.Outcome = OutcomeFlagged
			v.Label = label
		}

	case http.StatusBadRequest:
		v.Outcome = OutcomeBadRequest
		v.Message = fmt.Sprintf("Your code is: %d %s. (Please check the syntax of your URL!)",
			res.StatusCode, StatusText(res.StatusCode))
		v.Detail = Describe(res.Body)

	default:
		v.Outcome = OutcomeUnexpected
		v.Message = fmt.Sprintf("Your code is: %d", res.StatusCode)
		v.Detail = Describe(res.Body)
	}

	return v
}

// StatusText returns the upper case reason phrase for code, e.g. "NO CONTENT".
func StatusText(code int) string {
	return strings.ToUpper(http.StatusText(code))
}

// Describe boils an error body down to one line. HTML pages are reduced to
// their title.
func Describe(body []byte) string {

	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}

	if strings.HasPrefix(text, "<") {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err == nil {
			title := strings.TrimSpace(doc.Find("title").First().Text())
			if title == "" {
				title = strings.TrimSpace(doc.Find("body").Text())
			}
			text = title
		}
	}

	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}
	if len(text) > maxDetailLength {
		text = text[:maxDetailLength] + "..."
	}

	return text
}
