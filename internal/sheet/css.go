package sheet

// Per-variant stylesheets. The grid markup is shared; only sizing and
// chrome differ.

const printCSS = `
@page {
    size: A4 landscape;
    margin: 10mm;
}

* { margin: 0; padding: 0; box-sizing: border-box; }

body {
    font-family: "Segoe UI", Arial, Helvetica, sans-serif;
    font-size: 11px;
    color: #222;
    background: #fff;
}

.table-row {
    display: flex;
    justify-content: center;
    gap: 16px;
    margin-bottom: 16px;
}

.page-block {
    flex: 0 0 auto;
    width: 250px;
}

.page-block.placeholder { visibility: hidden; }

.page-title {
    text-align: center;
    font-weight: bold;
    font-size: 14px;
    margin-bottom: 4px;
    padding: 3px 0;
    background: #333;
    color: #fff;
    border-radius: 4px 4px 0 0;
}

table {
    width: 100%;
    border-collapse: collapse;
    table-layout: fixed;
}

td {
    border: 1px solid #888;
    text-align: center;
    vertical-align: middle;
    padding: 6px 3px;
    height: 36px;
    font-size: 10px;
    word-break: break-word;
    overflow: hidden;
}

td.empty { background: #f0f0f0; }

@media print {
    body {
        -webkit-print-color-adjust: exact;
        print-color-adjust: exact;
    }
}
`

const desktopCSS = `
* { margin: 0; padding: 0; box-sizing: border-box; }

body {
    font-family: "Segoe UI", Arial, Helvetica, sans-serif;
    font-size: 14px;
    color: #222;
    background: #f5f5f5;
    padding: 24px;
}

.table-row {
    display: flex;
    justify-content: center;
    gap: 24px;
    margin-bottom: 24px;
}

.page-block {
    flex: 0 0 auto;
    width: 300px;
    background: #fff;
    border-radius: 6px;
    box-shadow: 0 1px 4px rgba(0,0,0,0.1);
    overflow: hidden;
}

.page-block.placeholder { visibility: hidden; }

.page-title {
    text-align: center;
    font-weight: bold;
    font-size: 16px;
    padding: 6px 0;
    background: #333;
    color: #fff;
}

table {
    width: 100%;
    border-collapse: collapse;
    table-layout: fixed;
}

td {
    border: 1px solid #ccc;
    text-align: center;
    vertical-align: middle;
    padding: 10px 5px;
    height: 48px;
    font-size: 13px;
    word-break: break-word;
    overflow: hidden;
}

td.empty { background: #f8f8f8; color: #bbb; }
`

const mobileCSS = `
* { margin: 0; padding: 0; box-sizing: border-box; }

body {
    font-family: -apple-system, "Segoe UI", Arial, Helvetica, sans-serif;
    font-size: 16px;
    color: #222;
    background: #f5f5f5;
    padding: 12px;
}

.table-row {
    display: flex;
    justify-content: center;
    margin-bottom: 16px;
}

.page-block {
    width: 100%;
    max-width: 400px;
    background: #fff;
    border-radius: 8px;
    box-shadow: 0 1px 4px rgba(0,0,0,0.1);
    overflow: hidden;
}

.page-title {
    text-align: center;
    font-weight: bold;
    font-size: 18px;
    padding: 8px 0;
    background: #333;
    color: #fff;
}

table {
    width: 100%;
    border-collapse: collapse;
    table-layout: fixed;
}

td {
    border: 1px solid #ccc;
    text-align: center;
    vertical-align: middle;
    padding: 12px 6px;
    height: 56px;
    font-size: 14px;
    word-break: break-word;
    overflow: hidden;
}

td.empty { background: #f8f8f8; color: #bbb; }
`
