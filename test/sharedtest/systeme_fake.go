package sharedtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"
)

const fakeSystemeAPIKey = "fake-sio-key"

type fakeContact struct {
	ID     int               `json:"id"`
	Email  string            `json:"email"`
	Fields []json.RawMessage `json:"fields"`
}

// FakeSysteme keeps contacts in memory and rejects a second contact with the same email.
type FakeSysteme struct {
	server *httptest.Server

	mu            sync.Mutex
	contacts      []*fakeContact
	nextID        int
	createCalls   map[string]int
	patchCalls    map[string]int
	enrollments   map[string][]string
	failEnrollIDs map[string]bool
}

func NewFakeSysteme() *FakeSysteme {
	f := &FakeSysteme{
		nextID:        1000,
		createCalls:   map[string]int{},
		patchCalls:    map[string]int{},
		enrollments:   map[string][]string{},
		failEnrollIDs: map[string]bool{},
	}

	r := mux.NewRouter()
	r.Methods("POST").Path("/contacts").HandlerFunc(f.createContactHandler)
	r.Methods("GET").Path("/contacts").HandlerFunc(f.listContactsHandler)
	r.Methods("PATCH").Path("/contacts/{id}").HandlerFunc(f.patchContactHandler)
	r.Methods("POST").Path("/school/courses/{courseID}/enrollments").HandlerFunc(f.enrollHandler)
	f.server = httptest.NewServer(f.requireAPIKey(r))

	return f
}

func (f *FakeSysteme) URL() string {
	return f.server.URL
}

func (f *FakeSysteme) Close() {
	f.server.Close()
}

// AddContact registers an existing contact and returns its id.
func (f *FakeSysteme) AddContact(email string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return strconv.Itoa(f.addContactLocked(email).ID)
}

func (f *FakeSysteme) ContactID(email string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c := f.findLocked(email); c != nil {
		return strconv.Itoa(c.ID)
	}
	return ""
}

func (f *FakeSysteme) CreateCalls(email string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createCalls[strings.ToLower(email)]
}

func (f *FakeSysteme) PatchCalls(contactID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.patchCalls[contactID]
}

// Enrollments returns the course ids the contact was enrolled into, in call order.
func (f *FakeSysteme) Enrollments(contactID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.enrollments[contactID]...)
}

func (f *FakeSysteme) FailEnrollments(courseID string, fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failEnrollIDs[courseID] = fail
}

func (f *FakeSysteme) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != fakeSystemeAPIKey {
			writeFakeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid API key"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeSysteme) addContactLocked(email string) *fakeContact {
	f.nextID++
	c := &fakeContact{ID: f.nextID, Email: email}
	f.contacts = append(f.contacts, c)
	return c
}

func (f *FakeSysteme) findLocked(email string) *fakeContact {
	for _, c := range f.contacts {
		if strings.EqualFold(c.Email, email) {
			return c
		}
	}
	return nil
}

func (f *FakeSysteme) createContactHandler(w http.ResponseWriter, r *http.Request) {
	var req fakeContact
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeFakeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid contact"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls[strings.ToLower(req.Email)]++

	if f.findLocked(req.Email) != nil {
		writeFakeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"violations": []map[string]string{{
				"propertyPath": "email",
				"message":      "This value is already used.",
			}},
		})
		return
	}

	c := f.addContactLocked(req.Email)
	c.Fields = req.Fields
	writeFakeJSON(w, http.StatusCreated, c)
}

func (f *FakeSysteme) listContactsHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	f.mu.Lock()
	defer f.mu.Unlock()

	items := []*fakeContact{}
	if c := f.findLocked(email); c != nil {
		items = append(items, c)
	}
	writeFakeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (f *FakeSysteme) patchContactHandler(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Content-Type") != "application/merge-patch+json" {
		writeFakeJSON(w, http.StatusUnsupportedMediaType, map[string]string{"message": "merge patch expected"})
		return
	}

	id := mux.Vars(r)["id"]

	f.mu.Lock()
	defer f.mu.Unlock()
	f.patchCalls[id]++
	writeFakeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (f *FakeSysteme) enrollHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ContactID json.Number `json:"contactId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFakeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid enrollment"})
		return
	}

	courseID := mux.Vars(r)["courseID"]

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failEnrollIDs[courseID] {
		writeFakeJSON(w, http.StatusInternalServerError, map[string]string{"message": "enrollment unavailable"})
		return
	}

	contactID := req.ContactID.String()
	f.enrollments[contactID] = append(f.enrollments[contactID], courseID)
	writeFakeJSON(w, http.StatusCreated, map[string]string{"courseId": courseID, "contactId": contactID})
}
