// Package formdetect locates forms in uploaded HTML projects and infers
// what each one is for by scoring its text against per-intent keyword sets.
package formdetect

import (
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"classico-be/internal/entity"
	"classico-be/internal/pkg/logger"
)

// Keywords maps each intent to the phrases that vote for it. Kept as plain
// data so the scoring policy stays inspectable and testable on its own.
var Keywords = map[entity.Intent][]string{
	entity.IntentLogin:   {"login", "log in", "sign in", "email", "username", "password"},
	entity.IntentSignup:  {"signup", "sign up", "register", "create account", "email", "username", "password", "confirm password"},
	entity.IntentContact: {"contact", "message", "subject", "phone", "send", "inquiry"},
}

// intentPriority is the documented tie-break order: when two intents score
// the same, the earlier one wins. Login before Signup means a bare
// email/password form reads as a login form.
var intentPriority = []entity.Intent{
	entity.IntentLogin,
	entity.IntentSignup,
	entity.IntentContact,
}

type Detector struct {
	log logger.ILogger
}

func NewDetector(log logger.ILogger) *Detector {
	return &Detector{log: log}
}

// DetectDirectory scans every markup file reachable under root and returns
// all classified forms in one flat slice. A file that cannot be read or
// parsed is skipped; it never fails the scan.
func (d *Detector) DetectDirectory(root string) []entity.DetectedForm {
	var forms []entity.DetectedForm
	for _, file := range markupFiles(root, d.log) {
		f, err := os.Open(file)
		if err != nil {
			d.log.Warn("formdetect", "skipping unreadable file", map[string]interface{}{
				"file":  file,
				"error": err.Error(),
			})
			continue
		}
		found, err := d.ExtractForms(f)
		f.Close()
		if err != nil {
			d.log.Warn("formdetect", "skipping unparseable file", map[string]interface{}{
				"file":  file,
				"error": err.Error(),
			})
			continue
		}
		forms = append(forms, found...)
	}
	return forms
}

// ExtractForms parses one HTML document best-effort and yields at most one
// DetectedForm per <form> element. Forms matching no intent are dropped.
func (d *Detector) ExtractForms(r io.Reader) ([]entity.DetectedForm, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var forms []entity.DetectedForm
	doc.Find("form").Each(func(_ int, form *goquery.Selection) {
		var signals []string
		var fields []entity.FormField

		form.Find("input, textarea, select, button").Each(func(_ int, control *goquery.Selection) {
			name := control.AttrOr("name", "")
			id := control.AttrOr("id", "")
			placeholder := control.AttrOr("placeholder", "")
			kind := control.AttrOr("type", goquery.NodeName(control))

			signals = append(signals, name, id, placeholder, kind)
			if name != "" {
				fields = append(fields, entity.FormField{Name: name, Kind: kind})
			}
		})

		form.Find("label").Each(func(_ int, label *goquery.Selection) {
			signals = append(signals, label.Text())
		})
		signals = append(signals, form.Text())

		haystack := strings.ToLower(strings.Join(signals, " "))
		intent, ok := classify(haystack)
		if !ok {
			return
		}
		forms = append(forms, entity.DetectedForm{Intent: intent, Fields: fields})
	})

	return forms, nil
}

// classify scores the haystack against every keyword set and returns the
// winning intent. Each keyword counts once no matter how often it occurs.
// A zero top score means the form carries no usable signal.
func classify(haystack string) (entity.Intent, bool) {
	best := entity.Intent("")
	bestScore := 0

	for _, intent := range intentPriority {
		score := 0
		for _, word := range Keywords[intent] {
			if strings.Contains(haystack, word) {
				score++
			}
		}
		if score > bestScore {
			best = intent
			bestScore = score
		}
	}

	if bestScore == 0 {
		return "", false
	}
	return best, true
}
