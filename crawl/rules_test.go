package crawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSameDomain(t *testing.T) {
	assert.True(t, IsSameDomain("https://example.com/page", "example.com"))
	assert.False(t, IsSameDomain("https://other.com/page", "example.com"))
	assert.False(t, IsSameDomain("https://sub.example.com/page", "example.com"))
	assert.False(t, IsSameDomain("://bad", "example.com"))
}

func TestIsStaticAsset(t *testing.T) {
	assert.True(t, IsStaticAsset("https://example.com/logo.png"))
	assert.True(t, IsStaticAsset("https://example.com/style.CSS"))
	assert.True(t, IsStaticAsset("https://example.com/report.pdf"))
	assert.False(t, IsStaticAsset("https://example.com/docs/page"))
	assert.False(t, IsStaticAsset("https://example.com/archive.html"))
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "https://example.com/page", NormalizeURL("https://example.com/page#section"))
	assert.Equal(t, "https://example.com/page", NormalizeURL("https://example.com/page/"))
	assert.Equal(t, "https://example.com/", NormalizeURL("https://example.com/"))
	assert.Equal(t, "https://example.com/a?b=c", NormalizeURL("https://example.com/a?b=c#frag"))
}

func TestFrontier(t *testing.T) {
	f := NewFrontier()
	f.Add("https://example.com/a")
	f.Add("https://example.com/b")
	f.Add("https://example.com/a") // duplicate, ignored

	assert.Equal(t, 2, f.Visited())
	assert.True(t, f.HasNext())
	assert.Equal(t, "https://example.com/a", f.Next())
	assert.Equal(t, "https://example.com/b", f.Next())
	assert.False(t, f.HasNext())
	assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, f.All())
}
