package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/levigross/grequests"
	"github.com/pkg/errors"
)

const (
	stepCreate  = "create"
	stepCapture = "capture"
)

// emulate_checkout drives a running API the way the storefront does: create an
// order, approve it in the PayPal sandbox, then capture it.
func main() {
	step := flag.String("step", stepCreate, "create or capture")
	host := flag.String("host", "http://localhost:3000", "API root")
	hasBump := flag.Bool("bump", false, "add the mini course to the order")
	orderID := flag.String("order", "", "order id to capture")
	expectedAmount := flag.String("expected", "", "expected amount for capture")
	email := flag.String("email", "", "email override for capture")
	flag.Parse()

	var (
		resp string
		err  error
	)
	switch *step {
	case stepCreate:
		resp, err = post(*host, "/create-paypal-order", map[string]interface{}{
			"hasBump": *hasBump,
		})
	case stepCapture:
		if *orderID == "" {
			log.Fatalf("Must set --order")
		}
		resp, err = post(*host, "/capture-paypal-order", map[string]interface{}{
			"orderID":        *orderID,
			"expectedAmount": *expectedAmount,
			"email":          *email,
		})
	default:
		log.Fatalf("unknown step %s", *step)
	}
	if err != nil {
		log.Fatalf("Can't emulate %s: %s", *step, err)
	}

	fmt.Println(resp)
}

func post(host, path string, payload interface{}) (string, error) {
	url := strings.TrimSuffix(host, "/") + path
	resp, err := grequests.Post(url, &grequests.RequestOptions{
		JSON: payload,
	})
	if err != nil {
		return "", errors.Wrapf(err, "can't send http request to %s", url)
	}
	defer resp.Close()

	body := resp.String()
	if !resp.Ok {
		return "", fmt.Errorf("%q response status code %d: %s", url, resp.StatusCode, body)
	}

	return body, nil
}
