package transportutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"reflect"

	"github.com/courseflow/courseflow-api/internal/api/apierrors"
	"github.com/pkg/errors"
)

const maxBodySize = 1 << 20

// DecodeRequest fills every settable pointer-to-struct field of request from the
// JSON body. An empty body decodes into a zero struct, so validation of required
// values is left to the endpoint.
func DecodeRequest(request interface{}, r *http.Request) error {
	val := reflect.ValueOf(request)
	if val.Type().Kind() != reflect.Ptr {
		return fmt.Errorf("invalid request type %s, pointer expected", val.Type().Kind())
	}
	val = val.Elem()

	body, err := readBody(r)
	if err != nil {
		return err
	}

	for i := 0; i < val.NumField(); i++ {
		f := val.Field(i)
		if !f.CanSet() {
			continue // service field, e.g. httpRequest
		}

		if err := decodeRequestField(f, body); err != nil {
			return errors.Wrapf(err, "can't decode request field %s", val.Type().Field(i).Name)
		}
	}

	return nil
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	defer r.Body.Close()

	body, err := ioutil.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodySize))
	if err != nil {
		return nil, errors.Wrap(apierrors.ErrBadRequest, err.Error())
	}

	return bytes.TrimSpace(body), nil
}

func decodeRequestField(f reflect.Value, body []byte) error {
	if f.Kind() != reflect.Ptr {
		return fmt.Errorf("invalid field type %s (%#v), pointer to struct expected", f.Kind(), f.Interface())
	}

	pointedType := f.Type().Elem()
	if pointedType.Kind() != reflect.Struct {
		return fmt.Errorf("invalid field type %s (%#v), struct expected", pointedType.Kind(), f.Interface())
	}

	ptrVal := reflect.New(pointedType)
	f.Set(ptrVal)

	if len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, ptrVal.Interface()); err != nil {
		return errors.Wrapf(apierrors.ErrBadRequest, "invalid payload json: %s", err)
	}

	return nil
}
