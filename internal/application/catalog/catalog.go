// Package catalog mantiene los catálogos estáticos del demo: módulos con su
// control por rol, configuraciones declarativas de formularios, productos del
// POS y directorio de plataformas e-commerce. Los documentos JSON externos
// pueden reemplazar módulos y formularios al arranque; todo documento cargado
// se valida estructuralmente antes de aceptarse.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tu-usuario/suite-pro/internal/domain"
	"github.com/tu-usuario/suite-pro/internal/domain/entity"
)

// Catalog agrupa los catálogos cargados. Las recargas de documentos validan
// todo antes de reemplazar y el reemplazo está sincronizado con las lecturas
// concurrentes de los handlers.
type Catalog struct {
	mu        sync.RWMutex
	modules   []entity.Module
	forms     map[string]entity.FormConfig
	products  []Product
	platforms []Platform

	validate *validator.Validate
}

// New construye el catálogo con los valores por defecto del demo.
func New() *Catalog {
	return &Catalog{
		modules:   defaultModules(),
		forms:     defaultForms(),
		products:  defaultProducts(),
		platforms: defaultPlatforms(),
		validate:  validator.New(),
	}
}

// LoadModulesFile reemplaza el catálogo de módulos con un documento JSON.
// Un documento inválido se rechaza como error de configuración.
func (c *Catalog) LoadModulesFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog: leer %s: %w", path, err)
	}
	var doc struct {
		Modules []entity.Module `json:"modules" validate:"required,min=1,dive"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("catalog: %s: %w: %v", path, domain.ErrInvalidConfig, err)
	}
	if err := c.validate.Struct(&doc); err != nil {
		return fmt.Errorf("catalog: %s: %w: %v", path, domain.ErrInvalidConfig, err)
	}
	seen := make(map[string]bool, len(doc.Modules))
	for _, m := range doc.Modules {
		if seen[m.ID] {
			return fmt.Errorf("catalog: %w: módulo duplicado %q", domain.ErrInvalidConfig, m.ID)
		}
		seen[m.ID] = true
	}
	c.mu.Lock()
	c.modules = doc.Modules
	c.mu.Unlock()
	return nil
}

// LoadFormsFile reemplaza las configuraciones de formularios con un documento
// JSON de la forma {"employee": {...}, "product": {...}, ...}.
func (c *Catalog) LoadFormsFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog: leer %s: %w", path, err)
	}
	var doc map[string]entity.FormConfig
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("catalog: %s: %w: %v", path, domain.ErrInvalidConfig, err)
	}
	for name, cfg := range doc {
		if err := c.CheckFormConfig(cfg); err != nil {
			return fmt.Errorf("catalog: formulario %q: %w", name, err)
		}
	}
	c.mu.Lock()
	c.forms = doc
	c.mu.Unlock()
	return nil
}

// CheckFormConfig valida una configuración de formulario: estructura (tags),
// unión cerrada de tipos de campo, selects con opciones y nombres únicos.
// Un tipo de campo desconocido es un error de configuración en la carga,
// no un control omitido en silencio.
func (c *Catalog) CheckFormConfig(cfg entity.FormConfig) error {
	if err := c.validate.Struct(&cfg); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	check := func(fields []entity.FormField) error {
		seen := make(map[string]bool, len(fields))
		for _, f := range fields {
			if !f.Type.Valid() {
				return fmt.Errorf("%w: tipo de campo desconocido %q en %q", domain.ErrInvalidConfig, f.Type, f.Name)
			}
			if f.Type == entity.FieldSelect && len(f.Options) == 0 {
				return fmt.Errorf("%w: select %q sin opciones", domain.ErrInvalidConfig, f.Name)
			}
			if seen[f.Name] {
				return fmt.Errorf("%w: nombre de campo duplicado %q", domain.ErrInvalidConfig, f.Name)
			}
			seen[f.Name] = true
		}
		return nil
	}
	if err := check(cfg.Fields); err != nil {
		return err
	}
	if cfg.HasItemDetails && len(cfg.ItemFields) == 0 {
		return fmt.Errorf("%w: hasItemDetails sin itemFields", domain.ErrInvalidConfig)
	}
	return check(cfg.ItemFields)
}

// ModulesForRole devuelve el catálogo filtrado por rol, en orden estable.
// Una lista vacía es un resultado válido (estado vacío, no error).
func (c *Catalog) ModulesForRole(role string) []entity.Module {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.Module, 0, len(c.modules))
	for _, m := range c.modules {
		if m.AllowedFor(role) {
			out = append(out, m)
		}
	}
	return out
}

// Module busca un módulo por id.
func (c *Catalog) Module(id string) (entity.Module, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, m := range c.modules {
		if m.ID == id {
			return m, true
		}
	}
	return entity.Module{}, false
}

// Form devuelve la configuración de formulario para un tipo de entidad.
func (c *Catalog) Form(name string) (entity.FormConfig, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cfg, ok := c.forms[name]
	return cfg, ok
}

// FormNames lista los tipos de entidad con formulario, ordenados.
func (c *Catalog) FormNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.forms))
	for name := range c.forms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Products devuelve el listado de productos demo del POS.
func (c *Catalog) Products() []Product {
	return c.products
}

// ProductByID busca un producto del POS.
func (c *Catalog) ProductByID(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Platforms devuelve el directorio de plataformas e-commerce.
func (c *Catalog) Platforms() []Platform {
	return c.platforms
}
