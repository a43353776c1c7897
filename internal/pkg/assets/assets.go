// Package assets holds the fixed client-side artifacts shipped with every
// bundle: the shared script and the stylesheet blocks that do not depend on
// the model call succeeding.
package assets

// SharedScript is the script.js included by every generated page: mobile
// navigation toggle, scroll-based header state, smooth in-page scrolling,
// and a navigation bridge that reports same-bundle page links to a hosting
// frame so an embedding preview can follow them.
const SharedScript = `(function () {
  'use strict';

  var header = document.querySelector('header');
  var toggle = document.querySelector('.nav-toggle');
  var nav = document.querySelector('header nav');

  if (toggle && nav) {
    toggle.addEventListener('click', function () {
      nav.classList.toggle('open');
      toggle.classList.toggle('open');
    });
  }

  if (header) {
    window.addEventListener('scroll', function () {
      if (window.scrollY > 10) {
        header.classList.add('scrolled');
      } else {
        header.classList.remove('scrolled');
      }
    });
  }

  document.addEventListener('click', function (event) {
    var link = event.target.closest('a');
    if (!link) return;

    var href = link.getAttribute('href') || '';

    // Smooth scrolling for in-page section anchors.
    if (href.charAt(0) === '#' && href.length > 1) {
      var section = document.getElementById(href.slice(1));
      if (section) {
        event.preventDefault();
        section.scrollIntoView({ behavior: 'smooth' });
        if (nav) nav.classList.remove('open');
      }
      return;
    }

    // Same-bundle page links are reported to a hosting frame, if any, so a
    // preview container can swap documents instead of navigating away.
    if (/^page\d+\.html$/.test(href) || href === 'index.html') {
      if (window.parent && window.parent !== window) {
        event.preventDefault();
        window.parent.postMessage({ type: 'navigate', page: href }, '*');
      }
    }
  });
})();
`

// StyleOverrides is appended to every stylesheet, model-generated or fixed,
// so typography, layout, navigation and hero background stay consistent even
// when the model call misses details.
const StyleOverrides = `
/* --- base overrides --- */
* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
  line-height: 1.6;
  color: #1f2937;
}
img { max-width: 100%; height: auto; display: block; }
section { padding: 3.5rem 1.25rem; max-width: 1100px; margin: 0 auto; }

header {
  position: sticky;
  top: 0;
  z-index: 100;
  display: flex;
  align-items: center;
  justify-content: space-between;
  gap: 1rem;
  padding: 0.75rem 1.25rem;
  background: #ffffff;
}
header.scrolled { box-shadow: 0 2px 10px rgba(0, 0, 0, 0.08); }
header .logo { font-weight: 700; font-size: 1.2rem; text-decoration: none; color: inherit; }
header nav ul { display: flex; gap: 1.25rem; list-style: none; margin: 0; padding: 0; }
header nav a { text-decoration: none; color: inherit; }
header nav a.active { font-weight: 700; border-bottom: 2px solid currentColor; }
.nav-toggle { display: none; background: none; border: 0; cursor: pointer; }

.hero {
  min-height: 55vh;
  display: flex;
  flex-direction: column;
  justify-content: center;
  background: linear-gradient(135deg, #1f2937 0%, #3b82f6 100%);
  color: #ffffff;
  max-width: none;
}
.hero h1 { font-size: clamp(2rem, 5vw, 3.25rem); margin: 0 0 0.5rem; }

.btn, .btn-primary {
  display: inline-block;
  padding: 0.7rem 1.6rem;
  border-radius: 999px;
  background: #3b82f6;
  color: #ffffff;
  text-decoration: none;
  border: 0;
  cursor: pointer;
}
.btn:hover, .btn-primary:hover { background: #2563eb; }

.grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 1.25rem; }
.card { background: #ffffff; border-radius: 12px; padding: 1.25rem; box-shadow: 0 1px 6px rgba(0, 0, 0, 0.08); }
.card img { border-radius: 8px; object-fit: cover; }

.contact-list { list-style: none; padding: 0; }
.contact-list li { margin: 0.4rem 0; }

@media (max-width: 768px) {
  .nav-toggle { display: block; }
  header nav { display: none; width: 100%; }
  header { flex-wrap: wrap; }
  header nav.open { display: block; }
  header nav ul { flex-direction: column; gap: 0.75rem; padding: 0.5rem 0; }
}
`

// DesignSystemCSS is the fixed stylesheet used by the single-page business
// flow, which makes no model call for styling.
const DesignSystemCSS = `/* styles.css */
:root {
  --color-primary: #1f2937;
  --color-accent: #3b82f6;
  --color-surface: #f9fafb;
}
body { background: var(--color-surface); }
h1, h2, h3 { color: var(--color-primary); line-height: 1.25; }
h2 { font-size: 1.8rem; margin-top: 0; }
blockquote {
  margin: 1.5rem 0;
  padding: 1rem 1.25rem;
  border-left: 4px solid var(--color-accent);
  background: #ffffff;
  border-radius: 0 8px 8px 0;
}
blockquote cite { display: block; margin-top: 0.5rem; font-style: normal; font-weight: 600; }
footer { text-align: center; padding: 2rem 1rem; color: #6b7280; }
`
