// Package debug 记录求解过程, 用于排查不收敛的初值
package debug

import (
	"encoding/json"
	"io"
	"log"
	"sync"
	"zfactor/solver"
)

// Entry 单次求根记录
type Entry struct {
	Model      string  `json:"model"`
	Pr         float64 `json:"pr"`
	Tr         float64 `json:"tr"`
	Guess      float64 `json:"guess"`
	Value      float64 `json:"value"`
	Iterations int     `json:"iterations"`
	Converged  bool    `json:"converged"`
	Err        string  `json:"error,omitempty"`
}

// Record 记录历史状态
type Record struct {
	mu      sync.Mutex
	Entries []Entry  `json:"entries"` // 求根记录
	Errors  []string `json:"errors"`  // 所有初值均失败的记录
}

func (*Record) IsDebug() bool { return true }

// Update 记录数据
func (list *Record) Update(a solver.Attempt) {
	e := Entry{
		Model:      a.Model,
		Pr:         a.Pr,
		Tr:         a.Tr,
		Guess:      a.Guess,
		Value:      a.Value,
		Iterations: a.Iterations,
		Converged:  a.Converged,
	}
	if a.Err != nil {
		e.Err = a.Err.Error()
	}
	list.mu.Lock()
	list.Entries = append(list.Entries, e)
	list.mu.Unlock()
}

func (list *Record) Error(err error) {
	list.mu.Lock()
	list.Errors = append(list.Errors, err.Error())
	list.mu.Unlock()
	log.Println(err)
}

// Snapshot 当前记录的副本
func (list *Record) Snapshot() []Entry {
	list.mu.Lock()
	defer list.mu.Unlock()
	return append([]Entry(nil), list.Entries...)
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error {
	list.mu.Lock()
	defer list.mu.Unlock()
	return json.NewEncoder(w).Encode(list)
}
