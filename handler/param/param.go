package param

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/schema"
)

var decoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("json")
	d.IgnoreUnknownKeys(true)
	return d
}()

// Binding decode query values (and the json body for mutating verbs)
// into v
func Binding(r *http.Request, v interface{}) error {
	if err := decoder.Decode(v, r.URL.Query()); err != nil {
		return err
	}

	if r.Method == http.MethodGet || r.Body == nil || r.ContentLength == 0 {
		return nil
	}

	return json.NewDecoder(r.Body).Decode(v)
}
