package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/axcelcuno/tienda/internal/domain"
	"github.com/axcelcuno/tienda/internal/usecase"
)

type Server struct {
	mux       *http.ServeMux
	files     http.Handler
	customers *usecase.CustomerUC
	products  *usecase.ProductUC
}

func New(frontendDir string, customers *usecase.CustomerUC, products *usecase.ProductUC) http.Handler {
	s := &Server{
		mux:       http.NewServeMux(),
		files:     http.FileServer(http.Dir(frontendDir)),
		customers: customers,
		products:  products,
	}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.mux.HandleFunc("/api/clientes", s.apiClientes)
	s.mux.HandleFunc("/api/productos", s.apiProductos)
	s.mux.HandleFunc("/api/productos/export", s.apiProductosExport)
	s.mux.HandleFunc("/api/login", s.apiLogin)
	s.mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	s.mux.HandleFunc("/", s.handleStatic)
}

func (s *Server) apiClientes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Name     string `json:"nombre"`
		Email    string `json:"correo"`
		Password string `json:"contrasena"`
		Country  string `json:"pais"`
		Age      *int   `json:"edad"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "cuerpo JSON inválido", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "nombre, correo y contrasena son requeridos", http.StatusBadRequest)
		return
	}
	id, err := s.customers.Register(r.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Country:  req.Country,
		Age:      req.Age,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			http.Error(w, "Correo ya registrado", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) apiProductos(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Name        string  `json:"nombre"`
		Description string  `json:"descripcion"`
		Price       float64 `json:"precio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "cuerpo JSON inválido", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "nombre requerido", http.StatusBadRequest)
		return
	}
	id, err := s.products.Create(r.Context(), req.Name, req.Description, req.Price)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) apiLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Email    string `json:"correo"`
		Password string `json:"contrasena"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "cuerpo JSON inválido", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "correo y contrasena requeridos", http.StatusBadRequest)
		return
	}
	name, err := s.customers.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			http.Error(w, "Cuenta no existe", http.StatusNotFound)
		case errors.Is(err, domain.ErrBadCredentials):
			http.Error(w, "Contraseña incorrecta", http.StatusUnauthorized)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"nombre": name})
}

// apiProductosExport streams the catalog as a spreadsheet for back-office use.
func (s *Server) apiProductosExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	list, err := s.products.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)
	_ = f.SetSheetRow(sheet, "A1", &[]any{"id", "nombre", "descripcion", "precio", "fecha"})
	for i, p := range list {
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow(sheet, cell, &[]any{p.ID, p.Name, p.Description, p.Price, p.CreatedAt})
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=productos.xlsx")
	if err := f.Write(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
