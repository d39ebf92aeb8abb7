package elements

import "fmt"

// Strategy names how a locator's value should be interpreted.
type Strategy string

const (
	CSS      Strategy = "css"
	XPath    Strategy = "xpath"
	ID       Strategy = "id"
	Name     Strategy = "name"
	LinkText Strategy = "link text"
	Tag      Strategy = "tag"
)

// Locator is an immutable (strategy, selector) pair identifying zero or
// more elements in the current document. Page objects declare them as
// package-level values and never mutate them.
type Locator struct {
	Strategy Strategy
	Value    string
}

func ByCSS(selector string) Locator     { return Locator{Strategy: CSS, Value: selector} }
func ByXPath(expression string) Locator { return Locator{Strategy: XPath, Value: expression} }
func ByID(id string) Locator            { return Locator{Strategy: ID, Value: id} }
func ByName(name string) Locator        { return Locator{Strategy: Name, Value: name} }
func ByLinkText(text string) Locator    { return Locator{Strategy: LinkText, Value: text} }
func ByTag(tag string) Locator          { return Locator{Strategy: Tag, Value: tag} }

// Selector renders the locator into a playwright selector-engine string.
// Link text uses the exact-match :text-is pseudo-class scoped to anchors.
func (l Locator) Selector() string {
	switch l.Strategy {
	case CSS:
		return "css=" + l.Value
	case XPath:
		return "xpath=" + l.Value
	case ID:
		return "id=" + l.Value
	case Name:
		return fmt.Sprintf("css=[name=%q]", l.Value)
	case LinkText:
		return fmt.Sprintf("css=a:text-is(%q)", l.Value)
	case Tag:
		return "css=" + l.Value
	default:
		return l.Value
	}
}

// String is the diagnostic form used in logs and error messages.
func (l Locator) String() string {
	return fmt.Sprintf("(%s, %q)", l.Strategy, l.Value)
}
