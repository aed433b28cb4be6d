package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type memStorage struct {
	values map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{values: map[string]string{}}
}

func (m *memStorage) Get(key string) (string, error) { return m.values[key], nil }
func (m *memStorage) Put(key, value string) error {
	m.values[key] = value
	return nil
}

func TestDefaultLocaleIsSpanish(t *testing.T) {
	s := NewStore(nil, Locale("xx"))

	locale, dict := s.Current()
	assert.Equal(t, LocaleES, locale)
	assert.Equal(t, "Guardar", dict.Common.Save)
}

func TestSetLocaleSwapsDictionaryAtomically(t *testing.T) {
	s := NewStore(nil, LocaleES)

	s.SetLocale(LocaleEN)

	locale, dict := s.Current()
	assert.Equal(t, LocaleEN, locale)
	assert.Equal(t, LocaleEN, dict.Locale)
	assert.Equal(t, "Save", dict.Common.Save)
}

func TestSetLocaleIgnoresUnknownCode(t *testing.T) {
	s := NewStore(nil, LocaleEN)

	s.SetLocale(Locale("fr"))

	locale, dict := s.Current()
	assert.Equal(t, LocaleEN, locale)
	assert.Equal(t, "Today", dict.Chat.Today)
}

func TestLocalePersistsAndReloads(t *testing.T) {
	storage := newMemStorage()
	s := NewStore(storage, LocaleES)

	s.SetLocale(LocaleEN)
	assert.Equal(t, "en", storage.values["agent-hub-locale"])

	reloaded := NewStore(storage, LocaleES)
	locale, _ := reloaded.Current()
	assert.Equal(t, LocaleEN, locale)
}

func TestInvalidPersistedLocaleFallsBack(t *testing.T) {
	storage := newMemStorage()
	storage.values["agent-hub-locale"] = "de"

	s := NewStore(storage, LocaleES)

	locale, _ := s.Current()
	assert.Equal(t, LocaleES, locale)
}
