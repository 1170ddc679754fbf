package httpclient

import "context"

type Sounds struct {
	Cat string `json:"cat"`
	Dog string `json:"dog"`
}

type Animal struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	CatData *string `json:"cat_data,omitempty"`
	Sound   string  `json:"sound"`
}

// Create llama GET /create.
func (c *Client) Create(ctx context.Context) error {
	return c.getJSON(ctx, "/create", nil)
}

// GetSound llama GET /get-sound.
func (c *Client) GetSound(ctx context.Context) (Sounds, error) {
	var out Sounds
	err := c.getJSON(ctx, "/get-sound", &out)
	return out, err
}

// List llama GET /animals.
func (c *Client) List(ctx context.Context) ([]Animal, error) {
	out := make([]Animal, 0)
	err := c.getJSON(ctx, "/animals", &out)
	return out, err
}
