package model

import "strings"

// Caption is generated Instagram copy for an action
type Caption struct {
	Text     string
	Hashtags []string
}

// Render joins the text and the hashtags the way they are pasted into Instagram
func (c *Caption) Render() string {
	if len(c.Hashtags) == 0 {
		return c.Text
	}
	tags := make([]string, len(c.Hashtags))
	for i, h := range c.Hashtags {
		tags[i] = "#" + h
	}
	return c.Text + "\n\n" + strings.Join(tags, " ")
}
