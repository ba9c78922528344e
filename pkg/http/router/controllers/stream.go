package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/navbearing/pkg/geo"
	"github.com/lintang-b-s/navbearing/pkg/util"
	"go.uber.org/zap"
)

const streamIdleTimeout = 5 * time.Minute

/*
headingStream. websocket, client sends gps fixes {"lon":..,"lat":..} one per message.
server answers every fix after the first with the heading from the previous fix.
malformed fixes, and fixes whose heading is not a finite number, get an error message
and are skipped, the previous fix is kept.
*/
func (api *bearingAPI) headingStream(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	conn, _, hs, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		api.log.Info("upgrade error", zap.Error(err), zap.String("remote_addr", r.RemoteAddr))
		return
	}
	defer conn.Close()

	api.log.Info("established websocket connection", zap.String("connection name", nameConn(conn)),
		zap.String("protocol", hs.Protocol))

	var prev *geo.Coordinate
	for {
		_ = conn.SetReadDeadline(time.Now().Add(streamIdleTimeout))
		msg, _, err := wsutil.ReadClientData(conn)
		if err != nil {
			var closed wsutil.ClosedError
			if errors.As(err, &closed) || errors.Is(err, io.EOF) {
				api.log.Info("websocket connection closed", zap.String("connection name", nameConn(conn)))
			} else {
				api.log.Error("websocket read error", zap.Error(err))
			}
			return
		}

		var fix headingFix
		if err := json.Unmarshal(msg, &fix); err != nil {
			if err := api.writeStreamError(conn, err); err != nil {
				return
			}
			continue
		}
		if err := api.validateStruct(fix); err != nil {
			if err := api.writeStreamError(conn, err); err != nil {
				return
			}
			continue
		}

		cur := fix.toCoordinate()
		if prev != nil {
			heading, err := api.bearingService.Heading(*prev, cur)
			if err != nil {
				if err := api.writeStreamError(conn, err); err != nil {
					return
				}
				continue
			}
			if err := api.writeStream(conn, envelope{"data": NewHeadingResponse(heading)}); err != nil {
				return
			}
		}
		prev = &cur
	}
}

func (api *bearingAPI) writeStream(conn net.Conn, data envelope) error {
	js, err := json.Marshal(data)
	if err != nil {
		api.log.Error("websocket encode error", zap.Error(err))
		js = []byte(`{"error":{"code":"Internal Server Error","message":"` + util.MessageInternalServerError + `"}}`)
	}
	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err := wsutil.WriteServerText(conn, js); err != nil {
		api.log.Error("websocket write error", zap.Error(err))
		return err
	}
	return nil
}

func (api *bearingAPI) writeStreamError(conn net.Conn, err error) error {
	return api.writeStream(conn, envelope{"error": map[string]string{
		"code":    http.StatusText(http.StatusBadRequest),
		"message": err.Error(),
	}})
}

func nameConn(conn net.Conn) string {
	return conn.LocalAddr().String() + " > " + conn.RemoteAddr().String()
}
