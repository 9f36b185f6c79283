package copywriter

import "github.com/bussola-app/bussola/pkg/domain/model"

func (c *Client) BuildPrompt(action *model.Action, category model.Category) (string, error) {
	return c.buildPrompt(action, category)
}

var ParseCaption = parseCaption
