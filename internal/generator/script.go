// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// script.go emits the behavior layer of a generated site. The script is
// identical for every framework: it only depends on the element IDs the
// markup always carries and on the common CSS classes.
package generator

// buildScript returns the fixed site script.
func buildScript() string {
	return siteScript
}

const siteScript = `// Bu dosya Web Builder tarafından otomatik olarak oluşturulmuştur.
document.addEventListener('DOMContentLoaded', function () {
  // Mobil menü aç/kapat.
  var toggle = document.getElementById('menu-toggle');
  var menu = document.getElementById('mobile-menu');
  if (toggle && menu) {
    toggle.addEventListener('click', function () {
      menu.hidden = !menu.hidden;
    });
  }

  // Sayfa içi bağlantılarda yumuşak kaydırma.
  document.querySelectorAll('a[href^="#"]').forEach(function (link) {
    link.addEventListener('click', function (e) {
      var id = link.getAttribute('href');
      if (id.length < 2) return;
      var target = document.querySelector(id);
      if (!target) return;
      e.preventDefault();
      target.scrollIntoView({ behavior: 'smooth' });
      if (menu && !menu.hidden) menu.hidden = true;
    });
  });

  // İletişim formu: istemci tarafı doğrulama + bildirim.
  var form = document.getElementById('contact-form');
  if (form) {
    form.addEventListener('submit', function (e) {
      e.preventDefault();
      var name = form.elements['name'].value.trim();
      var email = form.elements['email'].value.trim();
      var message = form.elements['message'].value.trim();

      if (!name || !email || !message) {
        showToast('Lütfen tüm alanları doldurun.', true);
        return;
      }
      if (!/^[^\s@]+@[^\s@]+\.[^\s@]+$/.test(email)) {
        showToast('Geçerli bir e-posta adresi girin.', true);
        return;
      }

      form.reset();
      showToast('Mesajınız gönderildi. Teşekkürler!', false);
    });
  }

  // Kısa ömürlü bildirim kutusu.
  function showToast(text, isError) {
    var old = document.querySelector('.toast');
    if (old) old.remove();
    var el = document.createElement('div');
    el.className = isError ? 'toast toast-error' : 'toast';
    el.textContent = text;
    document.body.appendChild(el);
    setTimeout(function () { el.remove(); }, 3000);
  }

  // Bölümler görünür oldukça yumuşak giriş animasyonu.
  var sections = document.querySelectorAll('section');
  if ('IntersectionObserver' in window) {
    sections.forEach(function (s) { s.classList.add('reveal-init'); });
    var observer = new IntersectionObserver(function (entries) {
      entries.forEach(function (entry) {
        if (entry.isIntersecting) {
          entry.target.classList.add('reveal-visible');
          observer.unobserve(entry.target);
        }
      });
    }, { threshold: 0.15 });
    sections.forEach(function (s) { observer.observe(s); });
  }
});
`
