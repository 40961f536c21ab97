package envserver

type Error struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
