/*
   LFLExtract - room extractor for Maniac Mansion C64 disk images
   Copyright (c) 2021, Alexander Vollschwitz

   This file is part of LFLExtract.

   LFLExtract is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   LFLExtract is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with LFLExtract. If not, see <http://www.gnu.org/licenses/>.
*/

package control

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/lflextract/pkg/disk"
	"github.com/xelalexv/lflextract/pkg/lfl"
)

//
const lockTimeout = 1 * time.Second

//
type APIServer interface {
	Serve() error
	Stop() error
}

//
func NewAPIServer(addr string, x *lfl.Extractor) APIServer {
	return &api{address: addr, extractor: x}
}

//
type api struct {
	address   string
	extractor *lfl.Extractor
	server    *http.Server
}

//
func (a *api) Serve() error {

	addr := a.address
	if len(strings.Split(addr, ":")) < 2 {
		addr = fmt.Sprintf("%s:8888", a.address)
	}

	log.Infof("LFLExtract API starts listening on %s", addr)
	a.server = &http.Server{Addr: addr, Handler: a.router()}

	err := a.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

//
func (a *api) Stop() error {
	if a.server != nil {
		log.Info("API server stopping...")
		err := a.server.Shutdown(context.Background())
		a.server = nil
		return err
	}
	return nil
}

//
func (a *api) router() *mux.Router {

	router := mux.NewRouter().StrictSlash(true)

	addRoute(router, "status", "GET", "/status", a.status)
	addRoute(router, "rooms", "GET", "/rooms", a.rooms)
	addRoute(router, "index", "GET", "/index", a.index)
	addRoute(router, "room", "GET", "/room/{room:[0-9]+}", a.room)
	addRoute(router, "dump", "GET", "/room/{room:[0-9]+}/dump", a.dump)

	return router
}

//
func addRoute(r *mux.Router, name, method, pattern string,
	handler http.HandlerFunc) {
	r.Methods(method).
		Path(pattern).
		Name(name).
		Handler(requestLogger(handler, name))
}

//
func requestLogger(inner http.Handler, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		log.WithFields(log.Fields{
			"remote": r.RemoteAddr,
			"method": r.Method,
			"path":   r.RequestURI,
		}).Debugf("API BEGIN | %s", name)

		start := time.Now()
		inner.ServeHTTP(w, r)

		log.WithFields(log.Fields{
			"remote":   r.RemoteAddr,
			"method":   r.Method,
			"path":     r.RequestURI,
			"duration": time.Since(start),
		}).Debugf("API END   | %s", name)
	})
}

//
func (a *api) status(w http.ResponseWriter, req *http.Request) {

	stat := &Status{
		Edition:  a.extractor.Edition().Name,
		Encoding: a.extractor.Encoding().String(),
	}
	for _, d := range []disk.Disk{disk.One, disk.Two} {
		stat.Images = append(stat.Images, a.extractor.Images().Image(d).Name())
	}

	if wantsJSON(req) {
		sendJSONReply(stat, http.StatusOK, w)
	} else {
		sendReply([]byte(stat.String()), http.StatusOK, w)
	}
}

//
func (a *api) rooms(w http.ResponseWriter, req *http.Request) {

	dir := a.directory(w)
	if dir == nil {
		return
	}

	list := make([]*Room, 0, dir.RoomCount())
	for _, e := range dir.Entries() {
		r := &Room{}
		r.fill(e, a.extractor.Edition())
		list = append(list, r)
	}

	if wantsJSON(req) {
		sendJSONReply(list, http.StatusOK, w)

	} else {
		strList := "\nROOM DISK TRACK SECTOR OFFSET RECORDS  FILE"
		for _, r := range list {
			strList += fmt.Sprintf("\n  %s", r.String())
		}
		sendReply([]byte(strList), http.StatusOK, w)
	}
}

//
func (a *api) index(w http.ResponseWriter, req *http.Request) {

	dir := a.directory(w)
	if dir == nil {
		return
	}

	var out bytes.Buffer
	if handleError(a.extractor.WriteIndex(dir, &out),
		http.StatusInternalServerError, w) {
		return
	}

	sendFileReply(lfl.IndexFileName(), out.Bytes(), w)
}

//
func (a *api) room(w http.ResponseWriter, req *http.Request) {

	room := a.readRoom(w, req)
	if room == nil {
		return
	}

	var out bytes.Buffer
	if handleError(a.extractor.WriteRoom(room, &out),
		http.StatusInternalServerError, w) {
		return
	}

	sendFileReply(lfl.FileName(room.Entry.Room), out.Bytes(), w)
}

//
func (a *api) dump(w http.ResponseWriter, req *http.Request) {

	room := a.readRoom(w, req)
	if room == nil {
		return
	}

	read, write := io.Pipe()

	go func() {
		room.Emit(write)
		write.Close()
	}()

	sendStreamReply(read, http.StatusOK, w)
}

// directory reads the room directory while holding the disk set lock. On
// error, the reply has been sent and nil is returned.
func (a *api) directory(w http.ResponseWriter) *lfl.Directory {

	if !a.lock(w) {
		return nil
	}
	defer a.extractor.Images().Unlock()

	dir, err := a.extractor.Directory()
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return nil
	}
	return dir
}

//
func (a *api) readRoom(w http.ResponseWriter, req *http.Request) *lfl.Room {

	ix := getRoom(w, req)
	if ix == -1 {
		return nil
	}

	if !a.lock(w) {
		return nil
	}
	defer a.extractor.Images().Unlock()

	dir, err := a.extractor.Directory()
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return nil
	}

	room, err := a.extractor.Room(dir, ix)
	if err != nil {
		if errors.Is(err, lfl.ErrNoSuchRoom) || errors.Is(err, lfl.ErrRoomAbsent) {
			handleError(err, http.StatusNotFound, w)
		} else {
			handleError(fmt.Errorf("room %d corrupted: %v", ix, err),
				http.StatusUnprocessableEntity, w)
		}
		return nil
	}

	return room
}

//
func (a *api) lock(w http.ResponseWriter) bool {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()
	if !a.extractor.Images().Lock(ctx) {
		handleError(fmt.Errorf("disk images busy"), http.StatusLocked, w)
		return false
	}
	return true
}

//
func getRoom(w http.ResponseWriter, req *http.Request) int {
	vars := mux.Vars(req)
	room, err := strconv.Atoi(vars["room"])
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return -1
	}
	return room
}

//
func setHeaders(h http.Header, json bool) {
	if json {
		h.Set("Content-Type", "application/json; charset=UTF-8")
	} else {
		h.Set("Content-Type", "text/plain; charset=UTF-8")
	}
}

//
func handleError(e error, statusCode int, w http.ResponseWriter) bool {

	if e == nil {
		return false
	}

	log.Errorf("%v", e)

	setHeaders(w.Header(), false)
	w.WriteHeader(statusCode)
	if _, err := w.Write([]byte(fmt.Sprintf("%v\n", e))); err != nil {
		log.Errorf("problem writing error: %v", err)
	}

	return true
}

//
func sendReply(body []byte, statusCode int, w http.ResponseWriter) {
	setHeaders(w.Header(), false)
	w.WriteHeader(statusCode)
	if _, err := fmt.Fprintf(w, "%s\n", body); err != nil {
		log.Errorf("problem sending reply: %v", err)
	}
}

//
func sendFileReply(name string, body []byte, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Errorf("problem sending file: %v", err)
	}
}

//
func sendStreamReply(r io.Reader, statusCode int, w http.ResponseWriter) {
	setHeaders(w.Header(), false)
	w.WriteHeader(statusCode)
	if _, err := io.Copy(w, r); err != nil {
		log.Errorf("problem sending reply: %v", err)
	}
}

//
func sendJSONReply(obj interface{}, statusCode int, w http.ResponseWriter) {
	setHeaders(w.Header(), true)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(obj); err != nil {
		log.Errorf("problem writing reply: %v", err)
	}
}

//
func wantsJSON(req *http.Request) bool {
	return strings.HasPrefix(req.Header.Get("Accept"), "application/json") ||
		req.Header.Get("Content-Type") == "application/json"
}
