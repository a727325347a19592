package stub

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

const noTimeout = -1

// Transport serves HTTP requests with a Fiber app without a network.
type Transport struct {
	App *fiber.App
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.App.Test(req, noTimeout)
}
