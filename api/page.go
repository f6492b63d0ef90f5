package api

import "net/http"

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(pageHTML))
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>mkcode &mdash; Barcode / QR Code Generator</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    background: #0a0a0a;
    color: #e0e0e0;
    display: flex;
    justify-content: center;
    align-items: center;
    min-height: 100vh;
  }
  .card {
    background: #1a1a1a;
    border: 1px solid #333;
    border-radius: 16px;
    padding: 40px;
    text-align: center;
    max-width: 520px;
    width: 100%;
  }
  h1 { font-size: 20px; font-weight: 600; margin-bottom: 8px; }
  .subtitle { color: #888; font-size: 14px; margin-bottom: 24px; }
  .row { margin-bottom: 16px; text-align: left; }
  label { display: block; font-size: 13px; color: #aaa; margin-bottom: 6px; }
  .kinds { display: flex; gap: 16px; }
  .kinds label { display: flex; align-items: center; gap: 6px; color: #e0e0e0; font-size: 14px; margin: 0; }
  input[type=text], select {
    width: 100%;
    background: #0f0f0f;
    color: #e0e0e0;
    border: 1px solid #333;
    border-radius: 8px;
    padding: 10px 12px;
    font-size: 14px;
  }
  button {
    width: 100%;
    background: #2563eb;
    color: #fff;
    border: 0;
    border-radius: 8px;
    padding: 12px;
    font-size: 15px;
    font-weight: 600;
    cursor: pointer;
    margin-top: 4px;
  }
  button:hover { background: #1d4ed8; }
  #preview {
    margin: 20px auto 0;
    padding: 16px;
    background: #fff;
    border-radius: 12px;
    display: none;
    max-width: 100%;
  }
  #preview img { max-width: 100%; height: auto; display: block; margin: 0 auto; }
  #message { font-size: 14px; margin-top: 16px; min-height: 20px; }
  .warn { color: #facc15; }
  .error { color: #f87171; }
  #download {
    display: none;
    margin-top: 16px;
    color: #4ade80;
    font-size: 14px;
    text-decoration: none;
  }
  #download:hover { text-decoration: underline; }
</style>
</head>
<body>
<div class="card">
  <h1>Barcode / QR Code Generator</h1>
  <p class="subtitle">Type some text, pick a format, download the PNG</p>

  <div class="row">
    <label>Code type</label>
    <div class="kinds">
      <label><input type="radio" name="kind" value="barcode" checked> Barcode</label>
      <label><input type="radio" name="kind" value="qrcode"> QR Code</label>
    </div>
  </div>

  <div class="row">
    <label for="payload">Data</label>
    <input type="text" id="payload" placeholder="Enter data:" autocomplete="off">
  </div>

  <div class="row" id="symbology-row">
    <label for="symbology">Barcode type</label>
    <select id="symbology"></select>
  </div>

  <button id="generate">Generate</button>

  <div id="preview"><img id="preview-img" alt="Generated code"></div>
  <div id="message"></div>
  <a id="download" href="#">Download PNG</a>
</div>
<script>
(function() {
  var payloadEl = document.getElementById('payload');
  var symbologyEl = document.getElementById('symbology');
  var symbologyRow = document.getElementById('symbology-row');
  var previewEl = document.getElementById('preview');
  var previewImg = document.getElementById('preview-img');
  var messageEl = document.getElementById('message');
  var downloadEl = document.getElementById('download');

  function kind() {
    return document.querySelector('input[name=kind]:checked').value;
  }

  function setMessage(text, cls) {
    messageEl.textContent = text;
    messageEl.className = cls || '';
  }

  function reset() {
    previewEl.style.display = 'none';
    downloadEl.style.display = 'none';
    setMessage('');
  }

  // Populate the symbology select from the server.
  fetch('/api/symbologies')
    .then(function(r) { return r.json(); })
    .then(function(syms) {
      syms.forEach(function(s) {
        var opt = document.createElement('option');
        opt.value = s.id;
        opt.textContent = s.label;
        symbologyEl.appendChild(opt);
      });
    });

  // The symbology select only applies to linear barcodes.
  document.querySelectorAll('input[name=kind]').forEach(function(el) {
    el.addEventListener('change', function() {
      symbologyRow.style.display = kind() === 'barcode' ? '' : 'none';
      reset();
    });
  });

  document.getElementById('generate').addEventListener('click', function() {
    reset();

    var payload = payloadEl.value;
    if (!payload) {
      setMessage('Please enter data.', 'warn');
      return;
    }

    var body = { kind: kind(), payload: payload };
    if (body.kind === 'barcode') body.symbology = symbologyEl.value;

    fetch('/api/generate', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify(body)
    })
      .then(function(r) { return r.json().then(function(data) { return { ok: r.ok, data: data }; }); })
      .then(function(res) {
        if (!res.ok) {
          setMessage('Error: ' + (res.data.error || 'code generation failed'), 'error');
          return;
        }
        previewImg.setAttribute('src', 'data:image/png;base64,' + res.data.png);
        previewEl.style.display = 'block';

        var params = new URLSearchParams(body);
        downloadEl.setAttribute('href', '/api/generate.png?' + params.toString());
        downloadEl.setAttribute('download', res.data.filename);
        downloadEl.textContent = 'Download ' + res.data.filename;
        downloadEl.style.display = 'inline-block';
      })
      .catch(function() {
        setMessage('Error: could not reach the server.', 'error');
      });
  });
})();
</script>
</body>
</html>`
