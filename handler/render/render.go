package render

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"tokenboard/core"
	"tokenboard/handler/codes"

	"github.com/sirupsen/logrus"
	"github.com/twitchtv/twirp"
)

type H map[string]interface{}

// ResponseErrorMessageAsHint internal error msg as hint
var ResponseErrorMessageAsHint bool

func init() {
	v := os.Getenv("RESPONSE_ERROR_MESSAGE_AS_HINT")
	ResponseErrorMessageAsHint, _ = strconv.ParseBool(v)
}

type errorResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Hint string `json:"hint,omitempty"`
}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	write(w, http.StatusOK, v)
}

// Error write err with the http status of its twirp class
func Error(w http.ResponseWriter, err error) {
	twerr := codes.Twirp(err)

	resp := errorResponse{
		Code: codes.Get(twerr),
		Msg:  twerr.Msg(),
	}

	status := twirp.ServerHTTPStatusFromErrorCode(twerr.Code())
	if status >= http.StatusInternalServerError && !ResponseErrorMessageAsHint {
		resp.Msg = http.StatusText(status)
	} else if ResponseErrorMessageAsHint {
		resp.Hint = err.Error()
	}

	write(w, status, resp)
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, msg string) {
	Error(w, twirp.NotFoundError(msg))
}

func write(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).Errorln("render json")
		status = http.StatusInternalServerError
		data, _ = json.Marshal(errorResponse{
			Code: int(core.ErrUnknown),
			Msg:  http.StatusText(status),
		})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}
